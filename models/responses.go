package models

// MessageResponse is the generic `{"message": ...}` success body used by the
// registration endpoint and the liveness probe.
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the `{"detail": ...}` error body every failing endpoint
// responds with.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// TokenResponse is the body of a successful POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// AddTodoResponse is the body of a successful POST /todos/add.
type AddTodoResponse struct {
	Message string `json:"message"`
	Data    Todo   `json:"data"`
}

// UserResponse is the profile view returned by GET /user.
// It deliberately omits credential and lifecycle fields.
type UserResponse struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phone_number"`
}
