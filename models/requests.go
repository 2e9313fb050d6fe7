package models

// RegisterRequest is the JSON body of POST /auth/register.
// Registration imposes no password length or email format rules; only the
// change-password endpoint constrains the new password.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required"`
	Username    string `json:"username" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"omitempty"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// TodoRequest is the JSON body of POST /todos/add and PUT /todos/{id}/update.
// Updates are a full field replace: every field is required.
type TodoRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=50"`
	Description string `json:"description" validate:"required,min=3,max=255"`
	Priority    int    `json:"priority" validate:"required,gte=1,lte=5"`
	Completed   bool   `json:"completed"`
}

// ChangePasswordRequest is the JSON body of PUT /user/change-password.
// CurrentPassword is re-verified against the stored digest before the new
// password is accepted.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6,max=255"`
}

// ChangeProfileRequest is the JSON body of PUT /user/change-profile.
type ChangeProfileRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Email       string `json:"email" validate:"required"`
}
