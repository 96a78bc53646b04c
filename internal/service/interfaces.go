package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/vnshop/identity/models"
)

// AuthService is the top-level authentication façade exposed to the
// transport layer: local login, federated login dispatch, token issuance
// and session validation.
type AuthService interface {
	// LoginLocal authenticates by email and password. requestedRole is
	// opt-in: "" issues a user session, "admin" requests an elevated
	// session and fails for non-allowlisted ids.
	LoginLocal(ctx context.Context, email, password, requestedRole string) (models.LoginResponse, error)

	// LoginFederated authenticates via a provider access token the
	// client already obtained. Federated sessions always carry the user
	// role.
	LoginFederated(ctx context.Context, party models.Party, accessToken string) (models.LoginResponse, error)

	// GetAccessToken issues a session token without any credential
	// check; used after a successful registration.
	GetAccessToken(ctx context.Context, userID int64, role models.Role) (models.Token, error)

	// ParseToken validates a raw token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ValidateSession re-resolves the token subject against the
	// directory, catching accounts removed since issuance.
	ValidateSession(ctx context.Context, token models.Token) (models.PublicUser, error)
}

// RegisterService is the registration and email-verification lifecycle.
type RegisterService interface {
	// Register creates an unverified account and schedules the
	// confirmation mail. Mail delivery is not part of the contract.
	Register(ctx context.Context, input models.RegisterRequest) (models.User, error)

	// VerifyEmail consumes a verification key. Returns true exactly once
	// per valid key; wrong, reused or already-verified keys return false
	// with a nil error.
	VerifyEmail(ctx context.Context, key string) (bool, error)

	// CheckEmailAvailable reports whether no account owns the email.
	CheckEmailAvailable(ctx context.Context, email string) (bool, error)
}

// IdentityResolver finds-or-creates the local account for a federated
// profile and maintains provider links.
type IdentityResolver interface {
	ResolveGoogle(ctx context.Context, profile models.ProviderProfile) (models.User, error)
	ResolveFacebook(ctx context.Context, profile models.ProviderProfile) (models.User, error)
}

// ConfirmationDispatcher hands confirmation mails to a background queue.
// Enqueue must not block; the return value reports queue acceptance and
// is observational only.
type ConfirmationDispatcher interface {
	Enqueue(toEmail, verificationLink string) bool
}
