package service

import (
	"context"

	"github.com/fyan514/go-todo-service/models"
)

// mockUserRepository implements store.UserRepository with overridable
// function fields so each test can wire exactly the behaviour it needs.
type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, userID int64) (models.User, error)
	updatePasswordFunc  func(ctx context.Context, userID int64, hashedPassword string) error
	updateProfileFunc   func(ctx context.Context, userID int64, profile models.ChangeProfileRequest) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.findUserByIDFunc(ctx, userID)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	return m.updatePasswordFunc(ctx, userID, hashedPassword)
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, userID int64, profile models.ChangeProfileRequest) error {
	return m.updateProfileFunc(ctx, userID, profile)
}

// mockTodoRepository implements store.TodoRepository with overridable
// function fields.
type mockTodoRepository struct {
	listByOwnerFunc        func(ctx context.Context, ownerID int64) ([]models.Todo, error)
	findByIDAndOwnerFunc   func(ctx context.Context, todoID, ownerID int64) (models.Todo, error)
	createFunc             func(ctx context.Context, todo models.Todo) (models.Todo, error)
	updateFunc             func(ctx context.Context, todo models.Todo) error
	deleteByIDAndOwnerFunc func(ctx context.Context, todoID, ownerID int64) error
	listAllFunc            func(ctx context.Context) ([]models.Todo, error)
	deleteByIDFunc         func(ctx context.Context, todoID int64) error
}

func (m *mockTodoRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Todo, error) {
	return m.listByOwnerFunc(ctx, ownerID)
}

func (m *mockTodoRepository) FindByIDAndOwner(ctx context.Context, todoID, ownerID int64) (models.Todo, error) {
	return m.findByIDAndOwnerFunc(ctx, todoID, ownerID)
}

func (m *mockTodoRepository) Create(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.createFunc(ctx, todo)
}

func (m *mockTodoRepository) Update(ctx context.Context, todo models.Todo) error {
	return m.updateFunc(ctx, todo)
}

func (m *mockTodoRepository) DeleteByIDAndOwner(ctx context.Context, todoID, ownerID int64) error {
	return m.deleteByIDAndOwnerFunc(ctx, todoID, ownerID)
}

func (m *mockTodoRepository) ListAll(ctx context.Context) ([]models.Todo, error) {
	return m.listAllFunc(ctx)
}

func (m *mockTodoRepository) DeleteByID(ctx context.Context, todoID int64) error {
	return m.deleteByIDFunc(ctx, todoID)
}
