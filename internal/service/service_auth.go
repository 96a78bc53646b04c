package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vnshop/identity/internal/adapter"
	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

// authService is the concrete implementation of [AuthService]. It holds
// only read-only state after construction and is safe for concurrent use.
type authService struct {
	directory store.UserDirectory
	resolver  IdentityResolver
	providers adapter.ProviderClient
	roles     RoleAuthority

	// tokenSignKey is the HMAC secret used to sign and verify session
	// tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given directory,
// identity resolver and provider client, populated with token parameters
// and the admin allowlist from cfg.
func NewAuthService(directory store.UserDirectory, resolver IdentityResolver, providers adapter.ProviderClient, cfg config.Auth, log *logger.Logger) AuthService {
	return &authService{
		directory:     directory,
		resolver:      resolver,
		providers:     providers,
		roles:         NewRoleAuthority(cfg.AdminIDs),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

// LoginLocal authenticates an email/password pair.
//
// An unknown email is reported as [ErrUnauthorized], never as a lookup
// fault. The admin role is opt-in per call: a normal login never consults
// the allowlist, and explicitly requesting "admin" with a non-allowlisted
// id fails with [ErrAdminRoleDenied] instead of downgrading.
func (a *authService) LoginLocal(ctx context.Context, email, password, requestedRole string) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	user, err := a.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn().Str("email", email).Msg("login attempt for unknown email")
			return models.LoginResponse{}, ErrUnauthorized
		}
		log.Err(err).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrWrongPassword
	}

	role := models.RoleUser
	if requestedRole == string(models.RoleAdmin) {
		if !a.roles.IsAdmin(user.ID) {
			log.Warn().Int64("id", user.ID).Msg("admin session requested by non-admin id")
			return models.LoginResponse{}, ErrAdminRoleDenied
		}
		role = models.RoleAdmin
	}

	return a.buildLoginResponse(ctx, user, role)
}

// LoginFederated dispatches to the Google or Facebook branch, fetches the
// profile with the caller-supplied access token, resolves the local
// account and issues a session token.
//
// Any upstream failure — transport error, timeout, unusable profile —
// degrades to an [ErrProviderAuth] login failure carrying the upstream
// message. Federated sessions always carry the user role.
func (a *authService) LoginFederated(ctx context.Context, party models.Party, accessToken string) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if accessToken == "" {
		return models.LoginResponse{}, ErrInvalidDataProvided
	}

	var (
		user models.User
		err  error
	)
	switch party {
	case models.PartyGoogle:
		user, err = a.loginByGoogle(ctx, accessToken)
	case models.PartyFacebook:
		user, err = a.loginByFacebook(ctx, accessToken)
	default:
		return models.LoginResponse{}, fmt.Errorf("%w: %q", ErrUnsupportedParty, party)
	}
	if err != nil {
		log.Err(err).Str("party", string(party)).Msg("federated login failed")
		return models.LoginResponse{}, err
	}

	return a.buildLoginResponse(ctx, user, models.RoleUser)
}

// loginByGoogle fetches the Google profile and resolves the account. A
// profile whose email Google has not verified is rejected.
func (a *authService) loginByGoogle(ctx context.Context, accessToken string) (models.User, error) {
	profile, err := a.providers.FetchGoogleProfile(ctx, accessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrProviderAuth, err)
	}
	if !profile.EmailVerified {
		return models.User{}, fmt.Errorf("%w: google account email is not verified", ErrProviderAuth)
	}

	return a.resolver.ResolveGoogle(ctx, profile)
}

func (a *authService) loginByFacebook(ctx context.Context, accessToken string) (models.User, error) {
	profile, err := a.providers.FetchFacebookProfile(ctx, accessToken)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrProviderAuth, err)
	}

	return a.resolver.ResolveFacebook(ctx, profile)
}

// GetAccessToken issues a session token for the given subject and role
// without any credential check. Registration reuses it to log the fresh
// account in.
func (a *authService) GetAccessToken(ctx context.Context, userID int64, role models.Role) (models.Token, error) {
	token, err := utils.GenerateSessionToken(a.tokenIssuer, userID, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw token string. Any validation
// failure (expired, wrong issuer, malformed, bad signature) is normalised
// to [ErrTokenIsExpiredOrInvalid].
func (a *authService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ValidateSession re-resolves the token subject from the directory to
// catch accounts removed or disabled since issuance. An absent subject is
// an authentication failure, not a lookup failure.
func (a *authService) ValidateSession(ctx context.Context, token models.Token) (models.PublicUser, error) {
	user, err := a.directory.FindByID(ctx, token.SubjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.PublicUser{}, ErrUnauthorized
		}
		return models.PublicUser{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user.Public(), nil
}

func (a *authService) buildLoginResponse(ctx context.Context, user models.User, role models.Role) (models.LoginResponse, error) {
	token, err := a.GetAccessToken(ctx, user.ID, role)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken: token.SignedString,
		ExpiresIn:   a.tokenDuration.String(),
		User:        user.Public(),
	}, nil
}
