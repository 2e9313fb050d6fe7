package store

const (
	createUser = `INSERT INTO users (email, username, first_name, last_name, phone_number, hashed_password, role, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING user_id, email, username, first_name, last_name, phone_number, hashed_password, role, is_active, created_at;`

	findUserByEmail = `SELECT user_id, email, username, first_name, last_name, phone_number, hashed_password, role, is_active, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, username, first_name, last_name, phone_number, hashed_password, role, is_active, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPassword = `UPDATE users
    SET hashed_password = $1
    WHERE user_id = $2;`

	updateUserProfile = `UPDATE users
    SET first_name = $1, last_name = $2, phone_number = $3, email = $4
    WHERE user_id = $5;`
)

// todoColumns is the canonical column order shared by every todo query and
// by scanTodo.
var todoColumns = []string{
	"todo_id",
	"title",
	"description",
	"priority",
	"completed",
	"owner_id",
	"created_at",
	"updated_at",
}
