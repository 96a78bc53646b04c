package http

import (
	"errors"
	"net/http"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/service"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnsupportedParty:        http.StatusBadRequest,
	service.ErrProviderAuth:            http.StatusBadRequest,
	service.ErrAdminRoleDenied:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrEmailTaken:              http.StatusConflict,
	service.ErrPhoneTaken:              http.StatusConflict,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrCaptchaRejected: http.StatusBadRequest,

	store.ErrNotFound:      http.StatusNotFound,
	store.ErrAlreadyExists: http.StatusConflict,
	store.ErrUnknownField:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the JSON error body.
// Unmapped errors are reported as a generic 500 without leaking the
// underlying message to the client.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("internal error crossed the handler boundary")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Status: status, Message: message}, status)
}
