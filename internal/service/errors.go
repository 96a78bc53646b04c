package service

import "errors"

var (
	// ErrInvalidDataProvided rejects requests with missing or malformed
	// required fields before any directory access.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthorized covers every "who are you" failure: unknown email,
	// unknown token subject, revoked account. Deliberately carries no
	// detail about which check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrWrongPassword is returned when the credential comparison fails
	// for an existing account.
	ErrWrongPassword = errors.New("wrong password")

	// ErrAdminRoleDenied is returned when a caller explicitly requests an
	// admin session for an id outside the allowlist. The request fails
	// rather than silently downgrading to a user session.
	ErrAdminRoleDenied = errors.New("admin role denied")

	// ErrUnsupportedParty is returned for a federated login naming an
	// unknown provider.
	ErrUnsupportedParty = errors.New("unsupported login party")

	// ErrProviderAuth wraps any upstream failure during a federated
	// login: transport errors, timeouts, non-2xx responses, unusable
	// profiles. Third-party outages degrade to a login failure, never a
	// crash, and the upstream message travels with the wrap.
	ErrProviderAuth = errors.New("provider authentication failed")

	// ErrEmailTaken is returned when registration targets an email that
	// already owns an account.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrPhoneTaken is returned when registration targets a phone number
	// that already owns an account.
	ErrPhoneTaken = errors.New("phone number is already registered")

	// ErrTokenCreationFailed wraps signing failures during issuance.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid normalises every token validation
	// failure; callers must not distinguish expired from malformed.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
