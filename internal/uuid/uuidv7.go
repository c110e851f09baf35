// Package uuid generates time-ordered identifiers for entity primary keys.
package uuid

import googleuuid "github.com/google/uuid"

// New generates a UUIDv7 string. UUIDv7 encodes a millisecond Unix
// timestamp in its high bits, so IDs sort in creation order; the
// transaction list relies on this for its date tiebreak. Falls back to
// a random UUIDv4 if the system entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
