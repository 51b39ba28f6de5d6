package utils

import (
	"errors"
	"strings"
)

// ValidateDocumentID checks that a path parameter is a usable
// Firestore document id before we build a document path from it.
func ValidateDocumentID(id string) error {
	if id == "" {
		return errors.New("document id is required")
	}
	if len(id) > 1500 {
		return errors.New("document id exceeds 1500 bytes")
	}
	if id == "." || id == ".." {
		return errors.New("document id cannot be '.' or '..'")
	}
	if strings.Contains(id, "/") {
		return errors.New("document id cannot contain '/'")
	}
	return nil
}
