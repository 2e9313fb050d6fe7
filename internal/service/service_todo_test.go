package service

import (
	"context"
	"testing"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/store"
	"github.com/fyan514/go-todo-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTodoService(repo *mockTodoRepository) TodoService {
	return NewTodoService(repo, logger.Nop())
}

func TestListOwn_ScopesToCaller(t *testing.T) {
	repo := &mockTodoRepository{
		listByOwnerFunc: func(_ context.Context, ownerID int64) ([]models.Todo, error) {
			assert.Equal(t, int64(1), ownerID)
			return []models.Todo{{TodoID: 10, OwnerID: 1}}, nil
		},
	}
	todos := newTestTodoService(repo)

	list, err := todos.ListOwn(context.Background(), testIdentity)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(10), list[0].TodoID)
}

func TestGetOwn_NotFound(t *testing.T) {
	repo := &mockTodoRepository{
		findByIDAndOwnerFunc: func(_ context.Context, todoID, ownerID int64) (models.Todo, error) {
			assert.Equal(t, int64(42), todoID)
			assert.Equal(t, int64(1), ownerID)
			return models.Todo{}, store.ErrTodoNotFound
		},
	}
	todos := newTestTodoService(repo)

	_, err := todos.GetOwn(context.Background(), testIdentity, 42)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestCreate_OwnerComesFromIdentity(t *testing.T) {
	repo := &mockTodoRepository{
		createFunc: func(_ context.Context, todo models.Todo) (models.Todo, error) {
			assert.Equal(t, int64(1), todo.OwnerID)
			todo.TodoID = 10
			return todo, nil
		},
	}
	todos := newTestTodoService(repo)

	created, err := todos.Create(context.Background(), testIdentity, models.TodoRequest{
		Title:       "buy groceries",
		Description: "milk, eggs, bread",
		Priority:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.TodoID)
	assert.Equal(t, int64(1), created.OwnerID)
	assert.Equal(t, "buy groceries", created.Title)
}

func TestUpdate_FullFieldReplace(t *testing.T) {
	repo := &mockTodoRepository{
		updateFunc: func(_ context.Context, todo models.Todo) error {
			assert.Equal(t, int64(42), todo.TodoID)
			assert.Equal(t, int64(1), todo.OwnerID)
			assert.Equal(t, "buy groceries", todo.Title)
			assert.True(t, todo.Completed)
			return nil
		},
	}
	todos := newTestTodoService(repo)

	err := todos.Update(context.Background(), testIdentity, 42, models.TodoRequest{
		Title:       "buy groceries",
		Description: "milk, eggs, bread",
		Priority:    3,
		Completed:   true,
	})
	assert.NoError(t, err)
}

func TestUpdate_ForeignTodo(t *testing.T) {
	repo := &mockTodoRepository{
		updateFunc: func(_ context.Context, _ models.Todo) error {
			return store.ErrTodoNotFound
		},
	}
	todos := newTestTodoService(repo)

	err := todos.Update(context.Background(), testIdentity, 42, models.TodoRequest{
		Title:       "buy groceries",
		Description: "milk, eggs, bread",
		Priority:    3,
	})
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}

func TestDelete_ScopesToCaller(t *testing.T) {
	repo := &mockTodoRepository{
		deleteByIDAndOwnerFunc: func(_ context.Context, todoID, ownerID int64) error {
			assert.Equal(t, int64(42), todoID)
			assert.Equal(t, int64(1), ownerID)
			return nil
		},
	}
	todos := newTestTodoService(repo)

	assert.NoError(t, todos.Delete(context.Background(), testIdentity, 42))
}

func TestListAll_ReturnsEveryOwner(t *testing.T) {
	repo := &mockTodoRepository{
		listAllFunc: func(_ context.Context) ([]models.Todo, error) {
			return []models.Todo{{TodoID: 1, OwnerID: 1}, {TodoID: 2, OwnerID: 9}}, nil
		},
	}
	todos := newTestTodoService(repo)

	list, err := todos.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(9), list[1].OwnerID)
}

func TestDeleteAny_IgnoresOwner(t *testing.T) {
	repo := &mockTodoRepository{
		deleteByIDFunc: func(_ context.Context, todoID int64) error {
			assert.Equal(t, int64(42), todoID)
			return nil
		},
	}
	todos := newTestTodoService(repo)

	assert.NoError(t, todos.DeleteAny(context.Background(), 42))
}

func TestDeleteAny_NotFound(t *testing.T) {
	repo := &mockTodoRepository{
		deleteByIDFunc: func(_ context.Context, _ int64) error {
			return store.ErrTodoNotFound
		},
	}
	todos := newTestTodoService(repo)

	err := todos.DeleteAny(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrTodoNotFound)
}
