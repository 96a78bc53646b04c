package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the coarse authorization level carried in a session token.
// It is computed at issuance time and never stored on the user record.
type Role string

const (
	// RoleUser is the default role for every authenticated session.
	RoleUser Role = "user"

	// RoleAdmin is granted only when the subject id is present in the
	// configured admin allowlist and the caller explicitly requested an
	// elevated session.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// SessionClaims is the fixed-shape JWT payload embedded in every issued
// session token: the subject id (standard "sub" claim) plus a role claim.
// Tokens are self-contained; verifying one requires no directory lookup.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the authorization level granted at issuance.
	Role Role `json:"role"`
}

// UserID extracts the subject claim and parses it as a base-10 int64.
func (c *SessionClaims) UserID() (int64, error) {
	sub, err := c.GetSubject()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(sub, 10, 64)
}

// Token pairs parsed session claims with their compact signed form.
//
// SignedString holds the serialized header.payload.signature ready to be
// transmitted in an Authorization header. SubjectID is the parsed "sub"
// claim, cached so callers do not re-parse the string form.
type Token struct {
	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SubjectID is the user id extracted from the "sub" claim.
	SubjectID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}
