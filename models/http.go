package models

// LoginRequest is the body of POST /api/auth/login.
//
// Role is opt-in: an empty value issues a regular user session, "admin"
// requests an elevated session and fails for ids outside the allowlist.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// PartyLoginRequest is the body of POST /api/auth/login-by-party.
// AccessToken is a provider access token the client already obtained.
type PartyLoginRequest struct {
	Party       string `json:"party"`
	AccessToken string `json:"access_token"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`

	// CaptchaToken is the reCAPTCHA response token; validated before any
	// directory access when captcha verification is configured.
	CaptchaToken string `json:"token,omitempty"`
}

// LoginResponse is returned by every successful authentication operation.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   string     `json:"expires_in"`
	User        PublicUser `json:"user"`
}

// EmailAvailabilityResponse is returned by GET /api/auth/check-email.
type EmailAvailabilityResponse struct {
	Email     string `json:"email"`
	Available bool   `json:"available"`
}

// ErrorResponse is the uniform failure body produced by the HTTP error
// mapper; no lower-layer fault crosses the handler boundary raw.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
