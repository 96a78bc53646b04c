package http

import (
	"encoding/json"
	"net/http"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.LoginLocal(ctx, request.Email, request.Password, request.Role)
	observeLogin("local", err)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("local login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", response.User.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) loginByParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PartyLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response, err := h.services.AuthService.LoginFederated(ctx, models.Party(request.Party), request.AccessToken)
	observeLogin(request.Party, err)
	if err != nil {
		log.Err(err).Str("party", request.Party).Msg("federated login failed")
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", response.User.ID).Str("party", request.Party).Msg("user successfully logged in via party")

	utils.WriteJSON(w, response, http.StatusOK)
}
