package http

import (
	"encoding/json"
	"net/http"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The captcha gate runs before any directory access.
	ok, err := h.captcha.Validate(ctx, request.CaptchaToken)
	if err != nil || !ok {
		log.Err(err).Msg("captcha verification failed")
		registrations.WithLabelValues("captcha_rejected").Inc()
		h.writeError(w, r, ErrCaptchaRejected)
		return
	}

	registeredUser, err := h.services.RegisterService.Register(ctx, request)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("registration failed")
		registrations.WithLabelValues("failure").Inc()
		h.writeError(w, r, err)
		return
	}
	registrations.WithLabelValues("success").Inc()

	log.Info().Int64("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered")

	// The fresh account is logged in right away; the session carries the
	// user role regardless of any future allowlist membership.
	token, err := h.services.AuthService.GetAccessToken(ctx, registeredUser.ID, models.RoleUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		ExpiresIn:   token.ExpiresAt.Sub(token.IssuedAt.Time).String(),
		User:        registeredUser.Public(),
	}, http.StatusOK)
}

// verifyEmail consumes the verification key and redirects the browser to
// the shop frontend. A stale or already-consumed key still redirects; the
// outcome only affects logging.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	key := r.URL.Query().Get("key")

	verified, err := h.services.RegisterService.VerifyEmail(ctx, key)
	if err != nil {
		log.Err(err).Msg("email verification failed")
		h.writeError(w, r, err)
		return
	}

	if !verified {
		log.Warn().Msg("verification key did not match any unverified account")
	}

	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

func (h *Handler) checkEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email := r.URL.Query().Get("email")

	available, err := h.services.RegisterService.CheckEmailAvailable(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("email availability check failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EmailAvailabilityResponse{Email: email, Available: available}, http.StatusOK)
}
