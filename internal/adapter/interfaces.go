// Package adapter contains the outbound integrations of the identity
// service: federated profile endpoints, reCAPTCHA verification and the
// SMTP transport for confirmation emails. Everything here is an I/O
// boundary; all calls are context-bound and time-limited.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/vnshop/identity/models"
)

// ProviderClient fetches a normalized profile from a federated identity
// provider using an access token the client already obtained.
type ProviderClient interface {
	// FetchGoogleProfile queries the Google userinfo endpoint.
	FetchGoogleProfile(ctx context.Context, accessToken string) (models.ProviderProfile, error)

	// FetchFacebookProfile queries the Facebook Graph profile endpoint.
	FetchFacebookProfile(ctx context.Context, accessToken string) (models.ProviderProfile, error)
}

// CaptchaVerifier checks a client-supplied reCAPTCHA response token.
type CaptchaVerifier interface {
	// Validate reports whether the token passes verification. The error
	// is non-nil only for transport-level failures.
	Validate(ctx context.Context, token string) (bool, error)
}

// MailSender delivers a confirmation email carrying a verification link.
// Callers treat delivery as fire-and-forget: the registration contract
// never depends on the outcome.
type MailSender interface {
	SendConfirmation(ctx context.Context, toEmail, verificationLink string) error
}
