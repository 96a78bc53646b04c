package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/service"
	"github.com/vnshop/identity/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginLocalFn      func(ctx context.Context, email, password, requestedRole string) (models.LoginResponse, error)
	loginFederatedFn  func(ctx context.Context, party models.Party, accessToken string) (models.LoginResponse, error)
	getAccessTokenFn  func(ctx context.Context, userID int64, role models.Role) (models.Token, error)
	parseTokenFn      func(ctx context.Context, tokenString string) (models.Token, error)
	validateSessionFn func(ctx context.Context, token models.Token) (models.PublicUser, error)
}

func (m *mockAuthService) LoginLocal(ctx context.Context, email, password, requestedRole string) (models.LoginResponse, error) {
	return m.loginLocalFn(ctx, email, password, requestedRole)
}

func (m *mockAuthService) LoginFederated(ctx context.Context, party models.Party, accessToken string) (models.LoginResponse, error) {
	return m.loginFederatedFn(ctx, party, accessToken)
}

func (m *mockAuthService) GetAccessToken(ctx context.Context, userID int64, role models.Role) (models.Token, error) {
	return m.getAccessTokenFn(ctx, userID, role)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ValidateSession(ctx context.Context, token models.Token) (models.PublicUser, error) {
	return m.validateSessionFn(ctx, token)
}

// ─────────────────────────────────────────────
// Mock RegisterService
// ─────────────────────────────────────────────

type mockRegisterService struct {
	registerFn    func(ctx context.Context, input models.RegisterRequest) (models.User, error)
	verifyEmailFn func(ctx context.Context, key string) (bool, error)
	checkEmailFn  func(ctx context.Context, email string) (bool, error)
}

func (m *mockRegisterService) Register(ctx context.Context, input models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, input)
}

func (m *mockRegisterService) VerifyEmail(ctx context.Context, key string) (bool, error) {
	return m.verifyEmailFn(ctx, key)
}

func (m *mockRegisterService) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	return m.checkEmailFn(ctx, email)
}

// ─────────────────────────────────────────────
// Mock CaptchaVerifier
// ─────────────────────────────────────────────

// stubCaptcha accepts or rejects every token uniformly.
type stubCaptcha struct {
	ok  bool
	err error
}

func (c *stubCaptcha) Validate(_ context.Context, _ string) (bool, error) {
	return c.ok, c.err
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testFrontendURL = "https://shop.example.com"

// newTestHandler builds a Handler wired to the given mocks. Nil mocks are
// allowed for surfaces a test never touches.
func newTestHandler(t *testing.T, auth service.AuthService, register service.RegisterService, captcha *stubCaptcha) *Handler {
	t.Helper()
	if captcha == nil {
		captcha = &stubCaptcha{ok: true}
	}
	svcs := &service.Services{
		AuthService:     auth,
		RegisterService: register,
	}
	return NewHandler(svcs, captcha, testFrontendURL, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubSessionToken returns a models.Token with populated time claims so
// handlers can derive an expiry without a real signing round.
func stubSessionToken(userID int64, role models.Role, duration time.Duration) models.Token {
	now := time.Now()
	return models.Token{
		SessionClaims: models.SessionClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "test",
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			},
			Role: role,
		},
		SignedString: "signed.jwt.token",
		SubjectID:    userID,
	}
}
