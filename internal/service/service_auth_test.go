package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/mock"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

const testSignKey = "test-sign-key"

func testAuthConfig(adminIDs ...int64) config.Auth {
	return config.Auth{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "shop-identity",
		TokenDuration: time.Hour,
		AdminIDs:      adminIDs,
	}
}

type authFixture struct {
	directory *mock.MockUserDirectory
	resolver  *mock.MockIdentityResolver
	providers *mock.MockProviderClient
	svc       AuthService
}

func newAuthFixture(t *testing.T, cfg config.Auth) *authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &authFixture{
		directory: mock.NewMockUserDirectory(ctrl),
		resolver:  mock.NewMockIdentityResolver(ctrl),
		providers: mock.NewMockProviderClient(ctrl),
	}
	f.svc = NewAuthService(f.directory, f.resolver, f.providers, cfg, logger.Nop())
	return f
}

func hashedUser(t *testing.T, id int64, email, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{
		ID:           id,
		Username:     "jane",
		Email:        email,
		PasswordHash: hash,
	}
}

func TestLoginLocal_Success(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	user := hashedUser(t, 7, "jane@example.com", "hunter22")

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "jane@example.com").
		Return(user, nil)

	response, err := f.svc.LoginLocal(context.Background(), "jane@example.com", "hunter22", "")

	require.NoError(t, err)
	assert.NotEmpty(t, response.AccessToken)
	assert.Equal(t, time.Hour.String(), response.ExpiresIn)
	assert.Equal(t, int64(7), response.User.ID)

	// the issued token must carry the subject and the user role
	token, err := utils.ValidateSessionToken(response.AccessToken, testSignKey, "shop-identity")
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.SubjectID)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestLoginLocal_WrongPassword(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())
	user := hashedUser(t, 7, "jane@example.com", "hunter22")

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "jane@example.com").
		Return(user, nil)

	_, err := f.svc.LoginLocal(context.Background(), "jane@example.com", "not-it", "")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginLocal_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNotFound)

	_, err := f.svc.LoginLocal(context.Background(), "ghost@example.com", "whatever", "")

	// an unknown email is an authentication failure, not a lookup fault
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLoginLocal_EmptyInput(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	_, err := f.svc.LoginLocal(context.Background(), "", "", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestLoginLocal_AdminOptIn(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(7))
	user := hashedUser(t, 7, "root@example.com", "hunter22")

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "root@example.com").
		Return(user, nil)

	response, err := f.svc.LoginLocal(context.Background(), "root@example.com", "hunter22", "admin")

	require.NoError(t, err)
	token, err := utils.ValidateSessionToken(response.AccessToken, testSignKey, "shop-identity")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, token.Role)
}

func TestLoginLocal_AdminDeniedForOutsider(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(999))
	user := hashedUser(t, 7, "jane@example.com", "hunter22")

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "jane@example.com").
		Return(user, nil)

	_, err := f.svc.LoginLocal(context.Background(), "jane@example.com", "hunter22", "admin")

	// requesting admin with a non-allowlisted id fails instead of
	// silently downgrading to a user session
	assert.ErrorIs(t, err, ErrAdminRoleDenied)
}

func TestLoginLocal_AllowlistedIDWithoutRequestStaysUser(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig(7))
	user := hashedUser(t, 7, "root@example.com", "hunter22")

	f.directory.EXPECT().
		FindByEmail(gomock.Any(), "root@example.com").
		Return(user, nil)

	response, err := f.svc.LoginLocal(context.Background(), "root@example.com", "hunter22", "")

	require.NoError(t, err)
	token, err := utils.ValidateSessionToken(response.AccessToken, testSignKey, "shop-identity")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestLoginFederated_Google(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	profile := models.ProviderProfile{ProviderID: "g-1", EmailVerified: true}
	resolved := models.User{ID: 9, Username: "jane"}

	f.providers.EXPECT().
		FetchGoogleProfile(gomock.Any(), "provider-token").
		Return(profile, nil)
	f.resolver.EXPECT().
		ResolveGoogle(gomock.Any(), profile).
		Return(resolved, nil)

	response, err := f.svc.LoginFederated(context.Background(), models.PartyGoogle, "provider-token")

	require.NoError(t, err)
	token, err := utils.ValidateSessionToken(response.AccessToken, testSignKey, "shop-identity")
	require.NoError(t, err)
	assert.Equal(t, int64(9), token.SubjectID)
	assert.Equal(t, models.RoleUser, token.Role)
}

func TestLoginFederated_GoogleUnverifiedEmail(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	f.providers.EXPECT().
		FetchGoogleProfile(gomock.Any(), "provider-token").
		Return(models.ProviderProfile{ProviderID: "g-1", EmailVerified: false}, nil)

	_, err := f.svc.LoginFederated(context.Background(), models.PartyGoogle, "provider-token")

	assert.ErrorIs(t, err, ErrProviderAuth)
}

func TestLoginFederated_Facebook(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	profile := models.ProviderProfile{ProviderID: "fb-1"}
	resolved := models.User{ID: 10}

	f.providers.EXPECT().
		FetchFacebookProfile(gomock.Any(), "provider-token").
		Return(profile, nil)
	f.resolver.EXPECT().
		ResolveFacebook(gomock.Any(), profile).
		Return(resolved, nil)

	response, err := f.svc.LoginFederated(context.Background(), models.PartyFacebook, "provider-token")

	require.NoError(t, err)
	assert.Equal(t, int64(10), response.User.ID)
}

func TestLoginFederated_UpstreamFailure(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	f.providers.EXPECT().
		FetchGoogleProfile(gomock.Any(), "provider-token").
		Return(models.ProviderProfile{}, assert.AnError)

	_, err := f.svc.LoginFederated(context.Background(), models.PartyGoogle, "provider-token")

	assert.ErrorIs(t, err, ErrProviderAuth)
}

func TestLoginFederated_UnknownParty(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	_, err := f.svc.LoginFederated(context.Background(), models.Party("myspace"), "provider-token")

	assert.ErrorIs(t, err, ErrUnsupportedParty)
}

func TestLoginFederated_EmptyAccessToken(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	_, err := f.svc.LoginFederated(context.Background(), models.PartyGoogle, "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestParseToken_RoundTrip(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	issued, err := f.svc.GetAccessToken(context.Background(), 42, models.RoleUser)
	require.NoError(t, err)

	parsed, err := f.svc.ParseToken(context.Background(), issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.SubjectID)
}

func TestParseToken_Invalid(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	_, err := f.svc.ParseToken(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestValidateSession_SubjectGone(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	f.directory.EXPECT().
		FindByID(gomock.Any(), int64(42)).
		Return(models.User{}, store.ErrNotFound)

	_, err := f.svc.ValidateSession(context.Background(), models.Token{SubjectID: 42})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateSession_Success(t *testing.T) {
	f := newAuthFixture(t, testAuthConfig())

	f.directory.EXPECT().
		FindByID(gomock.Any(), int64(42)).
		Return(models.User{ID: 42, Username: "jane", Email: "jane@example.com"}, nil)

	public, err := f.svc.ValidateSession(context.Background(), models.Token{SubjectID: 42})

	require.NoError(t, err)
	assert.Equal(t, int64(42), public.ID)
	assert.Equal(t, "jane", public.Username)
}
