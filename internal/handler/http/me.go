package http

import (
	"net/http"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/utils"
)

// me returns the public profile of the authenticated user. The session is
// re-resolved against the directory so tokens of removed accounts fail.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		log.Error().Msg("no session found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.ValidateSession(ctx, token)
	if err != nil {
		log.Err(err).Int64("id", token.SubjectID).Msg("session validation failed")
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
