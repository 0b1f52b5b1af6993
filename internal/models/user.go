package models

import "time"

// Roles stored in the users.role column.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UserDB represents a row of the users table.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key, assigned by the store
	Username     string    `json:"username" db:"username"`     // Unique username
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash, never the plain password
	Role         string    `json:"role" db:"role"`             // RoleAdmin or RoleUser
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Insertion timestamp
}

// UserView is the sanitized subset of a user record that is allowed to
// leave the auth service: no hash, no id, no creation time.
type UserView struct {
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	Role     string `json:"role" db:"role"`
}
