package http

import (
	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/service"
	"github.com/fyan514/go-todo-service/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validator,
		logger:    logger,
	}
}
