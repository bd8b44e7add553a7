// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// User represents a registered user of the payment system.
type User struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	PasswordHash     string
	DateOfBirth      *time.Time
	RegistrationDate time.Time
	LastLogin        *time.Time
	IsActive         bool
}

// NewUser creates a new active User. The store assigns ID and
// RegistrationDate on creation.
func NewUser(firstName, lastName, email, phone string) *User {
	return &User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		IsActive:  true,
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
