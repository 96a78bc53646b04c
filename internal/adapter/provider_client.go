package adapter

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/models"
)

// googleProfilePayload is the portion of the Google userinfo response the
// service cares about; the endpoint returns a larger object.
type googleProfilePayload struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// facebookProfilePayload mirrors the Graph API response for
// fields=name,email,picture. The picture URL is nested one level down.
type facebookProfilePayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

// httpProviderClient implements [ProviderClient] over resty. Every request
// inherits the configured timeout so a hung provider degrades to a login
// failure instead of stalling the caller.
type httpProviderClient struct {
	client      *resty.Client
	googleURL   string
	facebookURL string
}

// NewProviderClient constructs a [ProviderClient] using the endpoints and
// request timeout from cfg.
func NewProviderClient(cfg config.Providers) ProviderClient {
	cli := resty.New().SetTimeout(cfg.RequestTimeout)

	return &httpProviderClient{
		client:      cli,
		googleURL:   cfg.GoogleUserInfoURL,
		facebookURL: cfg.FacebookProfileURL,
	}
}

// FetchGoogleProfile queries the Google OAuth2 userinfo endpoint with the
// caller-supplied access token as a bearer credential.
func (p *httpProviderClient) FetchGoogleProfile(ctx context.Context, accessToken string) (models.ProviderProfile, error) {
	var payload googleProfilePayload

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetResult(&payload).
		Get(p.googleURL)
	if err != nil {
		return models.ProviderProfile{}, fmt.Errorf("google profile request: %w", err)
	}
	if resp.IsError() {
		return models.ProviderProfile{}, fmt.Errorf("google profile request: status %d", resp.StatusCode())
	}
	if payload.ID == "" {
		return models.ProviderProfile{}, fmt.Errorf("google profile request: empty profile id")
	}

	return models.ProviderProfile{
		ProviderID:    payload.ID,
		Email:         payload.Email,
		Name:          payload.Name,
		AvatarURL:     payload.Picture,
		EmailVerified: payload.VerifiedEmail,
	}, nil
}

// FetchFacebookProfile queries the Facebook Graph API profile endpoint.
// Facebook accepts the access token as a query parameter and reports the
// profile picture nested under picture.data.url.
func (p *httpProviderClient) FetchFacebookProfile(ctx context.Context, accessToken string) (models.ProviderProfile, error) {
	var payload facebookProfilePayload

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"access_token": accessToken,
			"fields":       "name,email,picture",
			"locale":       "en_US",
		}).
		SetResult(&payload).
		Get(p.facebookURL)
	if err != nil {
		return models.ProviderProfile{}, fmt.Errorf("facebook profile request: %w", err)
	}
	if resp.IsError() {
		return models.ProviderProfile{}, fmt.Errorf("facebook profile request: status %d", resp.StatusCode())
	}
	if payload.ID == "" {
		return models.ProviderProfile{}, fmt.Errorf("facebook profile request: empty profile id")
	}

	return models.ProviderProfile{
		ProviderID: payload.ID,
		Email:      payload.Email,
		Name:       payload.Name,
		AvatarURL:  payload.Picture.Data.URL,
		// Facebook does not report a verification flag on this endpoint;
		// an account reachable through a valid access token is treated as
		// verified, matching the Google branch's end state.
		EmailVerified: true,
	}, nil
}
