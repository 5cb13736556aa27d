/*
Package randx provides functions for generating unique identifiers.
*/
package randx

import "github.com/google/uuid"

// UserID returns a fresh random (v4) UUID for the user context of a meeting token.
// It is never derived from caller input, so repeated issuance for the same display
// name yields unrelated identifiers.
func UserID() string {
	return uuid.NewString()
}
