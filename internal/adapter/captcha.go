package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vnshop/identity/internal/config"
)

// recaptchaVerifier implements [CaptchaVerifier] against the Google
// reCAPTCHA siteverify endpoint.
type recaptchaVerifier struct {
	client    *resty.Client
	secret    string
	verifyURL string
}

// NewCaptchaVerifier constructs a [CaptchaVerifier] from cfg. When the
// secret is empty the verifier accepts every token, which disables the
// captcha gate for local development.
func NewCaptchaVerifier(cfg config.Captcha) CaptchaVerifier {
	return &recaptchaVerifier{
		client:    resty.New().SetTimeout(cfg.RequestTimeout),
		secret:    cfg.Secret,
		verifyURL: cfg.VerifyURL,
	}
}

// Validate posts the response token to siteverify and reports the
// "success" field of the answer.
func (v *recaptchaVerifier) Validate(ctx context.Context, token string) (bool, error) {
	if v.secret == "" {
		return true, nil
	}

	var payload struct {
		Success bool `json:"success"`
	}

	resp, err := v.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   v.secret,
			"response": token,
		}).
		SetResult(&payload).
		Post(v.verifyURL)
	if err != nil {
		return false, fmt.Errorf("captcha verification request: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("captcha verification request: status %d", resp.StatusCode())
	}

	return payload.Success, nil
}
