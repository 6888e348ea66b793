// Package models defines the core data structures for users and expenses.
package models

// User represents an application user with credentials.
type User struct {
	// ID is the unique identifier assigned by the store.
	ID int64
	// Username is the display name chosen by the user.
	Username string
	// Email is the unique login key of the user.
	Email string
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string
}

// PublicUser is the externally visible view of a User.
// It never carries the password hash.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the external view of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Expense is a single spending record owned by a user.
type Expense struct {
	// ID is the unique identifier assigned by the store.
	ID int64 `json:"id"`
	// UserID references the owning user.
	UserID int64 `json:"user_id"`
	// Title is free-text supplied by the caller.
	Title string `json:"title"`
	// Amount is the spent value. No currency or sign validation is applied.
	Amount float64 `json:"amount"`
}
