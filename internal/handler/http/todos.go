package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/internal/utils"
	"github.com/fyan514/go-todo-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	todos, err := h.services.TodoService.ListOwn(r.Context(), identity)
	if err != nil {
		log.Err(err).Msg("error listing todos")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	todoID, ok := h.todoIDFromPath(w, r)
	if !ok {
		return
	}

	todo, err := h.services.TodoService.GetOwn(r.Context(), identity, todoID)
	if err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			utils.WriteDetail(w, detailDataNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error getting todo")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) addTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var request models.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(request); err != nil {
		log.Err(err).Msg("todo request failed validation")
		utils.WriteDetail(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	created, err := h.services.TodoService.Create(r.Context(), identity, request)
	if err != nil {
		log.Err(err).Msg("error creating todo")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AddTodoResponse{
		Message: "Success add todo",
		Data:    created,
	}, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	todoID, ok := h.todoIDFromPath(w, r)
	if !ok {
		return
	}

	var request models.TodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(request); err != nil {
		log.Err(err).Msg("todo request failed validation")
		utils.WriteDetail(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := h.services.TodoService.Update(r.Context(), identity, todoID, request); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			utils.WriteDetail(w, detailTodoNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error updating todo")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	todoID, ok := h.todoIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.Delete(r.Context(), identity, todoID); err != nil {
		if errors.Is(err, store.ErrTodoNotFound) {
			utils.WriteDetail(w, detailTodoNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Msg("error deleting todo")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// identity retrieves the authenticated caller identity placed in the context
// by the auth middleware. A missing identity means the handler was reached
// outside the middleware chain; the caller gets the same opaque 401 as any
// other authorization failure.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (models.Identity, bool) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no identity in request context")
		utils.WriteDetail(w, detailUnauthorized, http.StatusUnauthorized)
		return models.Identity{}, false
	}

	return identity, true
}

// todoIDFromPath parses the {todoID} URL parameter. The ID must be a
// positive integer; anything else is a 422, mirroring the historical
// path-parameter constraint.
func (h *Handler) todoIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "todoID")
	todoID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || todoID <= 0 {
		logger.FromRequest(r).Error().Str("todo_id", raw).Msg("invalid todo id in path")
		utils.WriteDetail(w, "todo id must be a positive integer", http.StatusUnprocessableEntity)
		return 0, false
	}

	return todoID, true
}
