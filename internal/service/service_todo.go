package service

import (
	"context"
	"fmt"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/models"
)

// todoService is the concrete implementation of TodoService.
//
// It trusts the identity handed to it by the transport layer and enforces
// ownership purely through the repository's owner-scoped methods; the admin
// methods bypass the owner filter and are only wired behind the admin guard.
type todoService struct {
	todoRepository store.TodoRepository
	logger         *logger.Logger
}

// NewTodoService constructs a TodoService backed by the given repository.
func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		logger:         logger,
	}
}

// ListOwn returns every todo owned by the caller.
func (s *todoService) ListOwn(ctx context.Context, identity models.Identity) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListByOwner(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", identity.UserID).Msg("listing todos failed")
		return nil, fmt.Errorf("listing todos failed: %w", err)
	}

	return todos, nil
}

// GetOwn returns the caller's todo with the given ID.
// A foreign or missing todo yields store.ErrTodoNotFound.
func (s *todoService) GetOwn(ctx context.Context, identity models.Identity, todoID int64) (models.Todo, error) {
	todo, err := s.todoRepository.FindByIDAndOwner(ctx, todoID, identity.UserID)
	if err != nil {
		return models.Todo{}, fmt.Errorf("getting todo failed: %w", err)
	}

	return todo, nil
}

// Create persists a new todo owned by the caller.
func (s *todoService) Create(ctx context.Context, identity models.Identity, request models.TodoRequest) (models.Todo, error) {
	created, err := s.todoRepository.Create(ctx, models.Todo{
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		Completed:   request.Completed,
		OwnerID:     identity.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", identity.UserID).Msg("creating todo failed")
		return models.Todo{}, fmt.Errorf("creating todo failed: %w", err)
	}

	return created, nil
}

// Update performs a full field replace of the caller's todo.
// A foreign or missing todo yields store.ErrTodoNotFound.
func (s *todoService) Update(ctx context.Context, identity models.Identity, todoID int64, request models.TodoRequest) error {
	err := s.todoRepository.Update(ctx, models.Todo{
		TodoID:      todoID,
		Title:       request.Title,
		Description: request.Description,
		Priority:    request.Priority,
		Completed:   request.Completed,
		OwnerID:     identity.UserID,
	})
	if err != nil {
		return fmt.Errorf("updating todo failed: %w", err)
	}

	return nil
}

// Delete removes the caller's todo with the given ID.
// A foreign or missing todo yields store.ErrTodoNotFound.
func (s *todoService) Delete(ctx context.Context, identity models.Identity, todoID int64) error {
	if err := s.todoRepository.DeleteByIDAndOwner(ctx, todoID, identity.UserID); err != nil {
		return fmt.Errorf("deleting todo failed: %w", err)
	}

	return nil
}

// ListAll returns every todo of every user. Reachable only behind the admin
// guard.
func (s *todoService) ListAll(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing all todos failed")
		return nil, fmt.Errorf("listing all todos failed: %w", err)
	}

	return todos, nil
}

// DeleteAny removes the todo with the given ID regardless of owner.
// Reachable only behind the admin guard.
func (s *todoService) DeleteAny(ctx context.Context, todoID int64) error {
	if err := s.todoRepository.DeleteByID(ctx, todoID); err != nil {
		return fmt.Errorf("deleting todo failed: %w", err)
	}

	return nil
}
