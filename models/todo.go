package models

import "time"

// Todo represents a single to-do item owned by exactly one user.
// Ownership is assigned at creation time and never transferred.
type Todo struct {
	// TodoID is the internal unique identifier of the item.
	TodoID int64 `json:"id"`

	// Title is a short summary, 3–50 characters.
	Title string `json:"title"`

	// Description is the item body, 3–255 characters.
	Description string `json:"description"`

	// Priority ranges from 1 (lowest) to 5 (highest), inclusive.
	Priority int `json:"priority"`

	// Completed marks whether the item is done.
	Completed bool `json:"completed"`

	// OwnerID references the user the item belongs to. Every read and
	// mutation on the non-admin endpoints is scoped by this field.
	OwnerID int64 `json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}
