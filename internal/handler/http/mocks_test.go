package http

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/fyan514/go-todo-service/internal/logger"
	"github.com/fyan514/go-todo-service/internal/service"
	"github.com/fyan514/go-todo-service/internal/utils"
	"github.com/fyan514/go-todo-service/internal/validators"
	"github.com/fyan514/go-todo-service/models"
)

// mockAuthService implements service.AuthService with overridable function
// fields so each test wires exactly the behaviour it needs.
type mockAuthService struct {
	registerUserFunc func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFunc        func(ctx context.Context, email, password string) (models.User, error)
	createTokenFunc  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc   func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFunc(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFunc(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

// mockTodoService implements service.TodoService with overridable function
// fields.
type mockTodoService struct {
	listOwnFunc   func(ctx context.Context, identity models.Identity) ([]models.Todo, error)
	getOwnFunc    func(ctx context.Context, identity models.Identity, todoID int64) (models.Todo, error)
	createFunc    func(ctx context.Context, identity models.Identity, request models.TodoRequest) (models.Todo, error)
	updateFunc    func(ctx context.Context, identity models.Identity, todoID int64, request models.TodoRequest) error
	deleteFunc    func(ctx context.Context, identity models.Identity, todoID int64) error
	listAllFunc   func(ctx context.Context) ([]models.Todo, error)
	deleteAnyFunc func(ctx context.Context, todoID int64) error
}

func (m *mockTodoService) ListOwn(ctx context.Context, identity models.Identity) ([]models.Todo, error) {
	return m.listOwnFunc(ctx, identity)
}

func (m *mockTodoService) GetOwn(ctx context.Context, identity models.Identity, todoID int64) (models.Todo, error) {
	return m.getOwnFunc(ctx, identity, todoID)
}

func (m *mockTodoService) Create(ctx context.Context, identity models.Identity, request models.TodoRequest) (models.Todo, error) {
	return m.createFunc(ctx, identity, request)
}

func (m *mockTodoService) Update(ctx context.Context, identity models.Identity, todoID int64, request models.TodoRequest) error {
	return m.updateFunc(ctx, identity, todoID, request)
}

func (m *mockTodoService) Delete(ctx context.Context, identity models.Identity, todoID int64) error {
	return m.deleteFunc(ctx, identity, todoID)
}

func (m *mockTodoService) ListAll(ctx context.Context) ([]models.Todo, error) {
	return m.listAllFunc(ctx)
}

func (m *mockTodoService) DeleteAny(ctx context.Context, todoID int64) error {
	return m.deleteAnyFunc(ctx, todoID)
}

// mockUserService implements service.UserService with overridable function
// fields.
type mockUserService struct {
	profileFunc        func(ctx context.Context, identity models.Identity) (models.UserResponse, error)
	changePasswordFunc func(ctx context.Context, identity models.Identity, request models.ChangePasswordRequest) error
	changeProfileFunc  func(ctx context.Context, identity models.Identity, request models.ChangeProfileRequest) error
}

func (m *mockUserService) Profile(ctx context.Context, identity models.Identity) (models.UserResponse, error) {
	return m.profileFunc(ctx, identity)
}

func (m *mockUserService) ChangePassword(ctx context.Context, identity models.Identity, request models.ChangePasswordRequest) error {
	return m.changePasswordFunc(ctx, identity, request)
}

func (m *mockUserService) ChangeProfile(ctx context.Context, identity models.Identity, request models.ChangeProfileRequest) error {
	return m.changeProfileFunc(ctx, identity, request)
}

var (
	testUserIdentity  = models.Identity{Email: "fyan@gmail.com", UserID: 1}
	testAdminIdentity = models.Identity{Email: "admin@gmail.com", UserID: 2, Role: "admin"}
)

// newTestHandler builds a Handler around the given mocks with the real
// request validator and a silent logger. Nil mocks are replaced by empty
// ones so tests only wire the services they touch.
func newTestHandler(auth *mockAuthService, todos *mockTodoService, users *mockUserService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if todos == nil {
		todos = &mockTodoService{}
	}
	if users == nil {
		users = &mockUserService{}
	}

	return NewHandler(&service.Services{
		AuthService: auth,
		TodoService: todos,
		UserService: users,
	}, validators.NewRequestValidator(), logger.Nop())
}

// authedRequest injects a caller identity and a silent request-scoped logger
// into the request context, as the middleware chain would.
func authedRequest(r *http.Request, identity models.Identity) *http.Request {
	ctx := logger.Nop().WithContext(r.Context())
	ctx = context.WithValue(ctx, utils.IdentityCtxKey, identity)
	return r.WithContext(ctx)
}

// plainRequest injects only the silent logger, leaving the request
// unauthenticated.
func plainRequest(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

// okHandler is a terminal handler used to observe middleware pass-through.
func okHandler(captured *models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
				*captured = identity
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}

func serve(handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}
