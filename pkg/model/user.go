package model

import (
	"time"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

// User represents a customer or provider account
type User struct {
	ID              int       `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	Role            string    `json:"role" db:"role"`
	Location        string    `json:"location" db:"location"`
	IsVerified      bool      `json:"is_verified" db:"is_verified"`
	AccountDisabled bool      `json:"account_disabled" db:"account_disabled"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// UserCredentials is used for login requests
type UserCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegistrationRequest represents the payload for user registration
type RegistrationRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"omitempty,oneof=customer provider"`
	Location string `json:"location" binding:"required"`
}

// RegistrationResponse represents the success response after registration
type RegistrationResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}
