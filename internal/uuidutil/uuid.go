// Package uuidutil validates canonical UUID strings.
package uuidutil

import "github.com/google/uuid"

// canonicalLen is the length of the 8-4-4-4-12 form.
const canonicalLen = 36

// IsUUID reports whether s is a UUID in the canonical 8-4-4-4-12 hex form,
// case-insensitively. Other encodings accepted by uuid.Parse (URN, braced,
// bare hex) are rejected: the backend only understands the canonical form.
func IsUUID(s string) bool {
	if len(s) != canonicalLen {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
