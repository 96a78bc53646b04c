package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnshop/identity/internal/service"
	"github.com/vnshop/identity/models"
)

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginLocalFn: func(_ context.Context, email, password, requestedRole string) (models.LoginResponse, error) {
			assert.Equal(t, "jane@example.com", email)
			assert.Equal(t, "hunter22", password)
			assert.Empty(t, requestedRole)
			return models.LoginResponse{
				AccessToken: "signed.jwt.token",
				ExpiresIn:   "24h0m0s",
				User:        models.PublicUser{ID: 7, Username: "jane"},
			}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, models.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "signed.jwt.token", response.AccessToken)
	assert.Equal(t, int64(7), response.User.ID)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginLocalFn: func(context.Context, string, string, string) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, models.LoginRequest{
		Email:    "jane@example.com",
		Password: "not-it",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var response models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, http.StatusBadRequest, response.Status)
}

func TestLogin_AdminRoleDenied(t *testing.T) {
	auth := &mockAuthService{
		loginLocalFn: func(context.Context, string, string, string) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrAdminRoleDenied
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, models.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
		Role:     "admin",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_UnexpectedErrorIsOpaque(t *testing.T) {
	auth := &mockAuthService{
		loginLocalFn: func(context.Context, string, string, string) (models.LoginResponse, error) {
			return models.LoginResponse{}, assert.AnError
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, models.LoginRequest{
		Email:    "jane@example.com",
		Password: "hunter22",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestLoginByParty_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFederatedFn: func(_ context.Context, party models.Party, accessToken string) (models.LoginResponse, error) {
			assert.Equal(t, models.PartyGoogle, party)
			assert.Equal(t, "provider-token", accessToken)
			return models.LoginResponse{
				AccessToken: "signed.jwt.token",
				User:        models.PublicUser{ID: 9},
			}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login-by-party", strings.NewReader(jsonBody(t, models.PartyLoginRequest{
		Party:       "google",
		AccessToken: "provider-token",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(9), response.User.ID)
}

func TestLoginByParty_UnsupportedParty(t *testing.T) {
	auth := &mockAuthService{
		loginFederatedFn: func(context.Context, models.Party, string) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrUnsupportedParty
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login-by-party", strings.NewReader(jsonBody(t, models.PartyLoginRequest{
		Party:       "myspace",
		AccessToken: "provider-token",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginByParty_ProviderAuthFailure(t *testing.T) {
	auth := &mockAuthService{
		loginFederatedFn: func(context.Context, models.Party, string) (models.LoginResponse, error) {
			return models.LoginResponse{}, service.ErrProviderAuth
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login-by-party", strings.NewReader(jsonBody(t, models.PartyLoginRequest{
		Party:       "facebook",
		AccessToken: "expired",
	})))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
