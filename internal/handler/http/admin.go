package http

import (
	"errors"
	"net/http"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/internal/utils"
)

// listAllTodos returns every todo of every user. Reachable only behind the
// requireAdmin middleware.
func (h *Handler) listAllTodos(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	todos, err := h.services.TodoService.ListAll(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing all todos")
		utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

// deleteAnyTodo removes a todo regardless of owner. Reachable only behind
// the requireAdmin middleware.
func (h *Handler) deleteAnyTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	todoID, ok := h.todoIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.TodoService.DeleteAny(r.Context(), todoID); err != nil {
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
