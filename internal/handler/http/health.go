package http

import (
	"net/http"

	"github.com/fyan514/go-todo-service/internal/utils"
	"github.com/fyan514/go-todo-service/models"
)

// healthy is the liveness probe.
func (h *Handler) healthy(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: "healthy"}, http.StatusOK)
}
