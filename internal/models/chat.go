package models

import "time"

// Chat represents a chat document. Only the fields the fan-out
// engine reads are mapped; the client app owns the rest.
type Chat struct {
	Members []string `firestore:"members" json:"members"`
}

// ChatMessage is the snapshot of a newly created message document,
// delivered to us by the trigger infrastructure.
type ChatMessage struct {
	SenderID string    `firestore:"senderId" json:"senderId"`
	Text     string    `firestore:"text" json:"text"`
	SentAt   time.Time `firestore:"sentAt" json:"sentAt,omitempty"`
}
