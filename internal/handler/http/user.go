package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/service"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/internal/utils"
	"github.com/fyan514/go-todo-service/models"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	profile, err := h.services.UserService.Profile(r.Context(), identity)
	if err != nil {
		log.Err(err).Msg("error getting profile")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(request); err != nil {
		log.Err(err).Msg("change-password request failed validation")
		utils.WriteDetail(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.UserService.ChangePassword(r.Context(), identity, request); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			utils.WriteDetail(w, detailWrongConfirmation, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error changing password")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) changeProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.ChangeProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(request); err != nil {
		log.Err(err).Msg("change-profile request failed validation")
		utils.WriteDetail(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.UserService.ChangeProfile(r.Context(), identity, request); err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			utils.WriteDetail(w, detailUserExists, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error changing profile")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
