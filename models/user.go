package models

import (
	"database/sql"
	"time"
)

// User represents an authenticatable shop account. An account may hold a
// local credential, a Google link, a Facebook link, or any combination of
// the three; links are only ever added, never removed.
//
// PasswordHash is always present: federated-only accounts are backfilled
// with a hashed random throwaway password at creation time.
type User struct {
	// ID is the internal unique identifier assigned by the directory.
	ID int64 `json:"id"`

	// Username is the globally unique human-facing handle. It is chosen
	// by the username allocator at creation time and never reassigned.
	Username string `json:"username"`

	// Email is the globally unique contact address used for local login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Phone is the optional, unique-or-null phone number.
	Phone sql.NullString `json:"phone"`

	// GoogleID and FacebookID are provider-specific identifiers.
	// When non-null they are globally unique; a non-null value is never
	// overwritten by account linking.
	GoogleID   sql.NullString `json:"-"`
	FacebookID sql.NullString `json:"-"`

	// Name is the display name, derived from the email local-part for
	// local signups or taken from the provider profile.
	Name string `json:"name"`

	// AvatarURL is the profile picture URL, refreshed on federated login.
	AvatarURL string `json:"avatar"`

	// EmailVerified reports whether the account email has been confirmed.
	// The transition false -> true is one-way.
	EmailVerified bool `json:"email_verified"`

	// VerificationKey is the one-time opaque token proving control of the
	// registered email address. Non-null only while EmailVerified is
	// false; cleared on successful verification. Never exposed via JSON.
	VerificationKey sql.NullString `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the caller-facing view of a [User] with credential and
// verification material stripped.
type PublicUser struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Name          string `json:"name"`
	AvatarURL     string `json:"avatar"`
	EmailVerified bool   `json:"email_verified"`
}

// Public converts a directory record into its caller-facing view.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		Phone:         u.Phone.String,
		Name:          u.Name,
		AvatarURL:     u.AvatarURL,
		EmailVerified: u.EmailVerified,
	}
}
