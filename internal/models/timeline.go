package models

import "time"

// Timeline entry types that affect notification wording. Any
// unrecognized type gets the check-in phrasing.
const (
	EntryTypeClink   = "clink"
	EntryTypeCheckIn = "check-in"
)

// TimelineEntry is the snapshot of a newly created timeline entry.
type TimelineEntry struct {
	Type      string    `firestore:"type" json:"type"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt,omitempty"`
}
