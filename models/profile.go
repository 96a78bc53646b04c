package models

// Party identifies a federated identity provider.
type Party string

const (
	PartyGoogle   Party = "google"
	PartyFacebook Party = "facebook"
)

// ProviderProfile is the normalized profile payload returned by a
// federated identity provider for a caller-supplied access token.
// Provider-specific response shapes are flattened by the adapter layer
// before they reach the identity resolver.
type ProviderProfile struct {
	// ProviderID is the provider-scoped stable identifier (Google "id",
	// Facebook "id"). It is the sole match key during resolution.
	ProviderID string

	// Email is the address reported by the provider. It is informational
	// during resolution; no email-based account merging is performed.
	Email string

	// Name is the display name, used as the username allocation seed for
	// first-time federated logins.
	Name string

	// AvatarURL is the profile picture URL.
	AvatarURL string

	// EmailVerified reports whether the provider itself has verified the
	// email address.
	EmailVerified bool
}
