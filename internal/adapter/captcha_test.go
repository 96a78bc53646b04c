package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnshop/identity/internal/config"
)

func TestCaptchaVerifier_NoSecretAcceptsEverything(t *testing.T) {
	verifier := NewCaptchaVerifier(config.Captcha{})

	ok, err := verifier.Validate(context.Background(), "anything")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCaptchaVerifier_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "shh", r.PostForm.Get("secret"))
		assert.Equal(t, "client-token", r.PostForm.Get("response"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	verifier := NewCaptchaVerifier(config.Captcha{
		Secret:         "shh",
		VerifyURL:      srv.URL,
		RequestTimeout: 2 * time.Second,
	})

	ok, err := verifier.Validate(context.Background(), "client-token")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCaptchaVerifier_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	verifier := NewCaptchaVerifier(config.Captcha{
		Secret:         "shh",
		VerifyURL:      srv.URL,
		RequestTimeout: 2 * time.Second,
	})

	ok, err := verifier.Validate(context.Background(), "bad-token")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCaptchaVerifier_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	verifier := NewCaptchaVerifier(config.Captcha{
		Secret:         "shh",
		VerifyURL:      srv.URL,
		RequestTimeout: 2 * time.Second,
	})

	_, err := verifier.Validate(context.Background(), "client-token")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
