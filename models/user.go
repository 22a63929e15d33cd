package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database; immutable after creation.
	UserID int64 `json:"-"`

	// Username is the unique login identifier of the user.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a one-way hash, never plaintext, and is never
	// serialized in responses.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
