package utils

import (
	"context"

	"github.com/vnshop/identity/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents key collisions with other packages
// that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the parsed session token in the
// context. The authentication middleware writes it; handlers read it back
// with [GetSessionFromContext] instead of re-parsing the token.
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the parsed session token from the context.
//
// Returns the token and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(SessionCtxKey).(models.Token)
	return token, ok
}
