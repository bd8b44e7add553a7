// Package dto contains request and response shapes for the HTTP surface.
package dto

import (
	"time"

	"github.com/payment-system/backend/internal/application/usecase/user"
)

// RegisterUserRequest is the body for user registration.
type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// RegisterUserResponse is returned after a successful registration.
type RegisterUserResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// UpdateUserRequest is the body for a full user update.
type UpdateUserRequest struct {
	FirstName   string     `json:"first_name" binding:"required"`
	LastName    string     `json:"last_name" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	IsActive    bool       `json:"is_active"`
}

// UserResponse is the HTTP view of a user. The password hash is never
// serialized.
type UserResponse struct {
	ID               int64      `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	IsActive         bool       `json:"is_active"`
}

// UserListResponse carries a page-less list of users plus the total count.
type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}

// NewUserResponse maps a use case output onto the HTTP shape.
func NewUserResponse(u *user.UserOutput) *UserResponse {
	return &UserResponse{
		ID:               u.ID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		DateOfBirth:      u.DateOfBirth,
		RegistrationDate: u.RegistrationDate,
		LastLogin:        u.LastLogin,
		IsActive:         u.IsActive,
	}
}

// NewUserResponses maps a slice of use case outputs.
func NewUserResponses(users []*user.UserOutput) []*UserResponse {
	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, NewUserResponse(u))
	}
	return responses
}
