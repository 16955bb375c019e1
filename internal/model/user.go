package model

import "time"

// User represents a user record in the database.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserView is the read-only projection of a User that is safe to hand
// to templates and request contexts. It has no password hash field at
// all, so the digest cannot leak through rendering.
type UserView struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
}

// View builds the sanitized projection without mutating the entity.
func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// RegisterForm carries the fields submitted by the registration form.
type RegisterForm struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// LoginForm carries the fields submitted by the login form.
type LoginForm struct {
	Email    string
	Password string
}
