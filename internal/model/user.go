package model

import "time"

// User is an account that owns templates and sessions
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedOn    time.Time `json:"created_on"`
}

// RegisterRequest represents a signup request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username,omitempty"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the signed token and the authenticated user
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
