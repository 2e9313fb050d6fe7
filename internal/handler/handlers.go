// Package handler aggregates the transport-specific handler constructors.
package handler

import (
	"github.com/fyan514/go-todo-service/internal/handler/http"
	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/service"
	"github.com/fyan514/go-todo-service/internal/validators"
)

// Handlers holds one handler per transport. Only HTTP is served.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers constructs every transport handler with its dependencies
// injected explicitly.
func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	return &Handlers{
		HTTP: http.NewHandler(services, validators.NewRequestValidator(), logger),
	}
}
