// Package service implements the business logic of the application:
// authentication and token lifecycle, todo operations, and profile
// management. Services hold no per-request state; everything request-scoped
// travels through context.Context.
package service

import (
	"github.com/fyan514/go-todo-service/internal/config"
	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
)

type Services struct {
	AuthService AuthService
	TodoService TodoService
	UserService UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		TodoService: NewTodoService(storages.TodoRepository, logger),
		UserService: NewUserService(storages.UserRepository, cfg.App, logger),
	}
}
