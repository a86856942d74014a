package model

import "github.com/google/uuid"

// ID is the primary key for every stored entity: a random 128-bit
// identifier, rendered as canonical UUID text in the persisted file.
// The zero value means "no reference".
type ID = uuid.UUID

// NewID generates a fresh random identifier.
func NewID() ID {
	return uuid.New()
}

// ParseID parses canonical UUID text.
func ParseID(s string) (ID, error) {
	return uuid.Parse(s)
}
