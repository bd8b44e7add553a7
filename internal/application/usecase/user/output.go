// Package user contains user-related use cases.
package user

import (
	"time"

	"github.com/payment-system/backend/internal/domain/entity"
)

// UserOutput is the use case view of a user. The password hash never
// leaves the application layer.
type UserOutput struct {
	ID               int64
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	DateOfBirth      *time.Time
	RegistrationDate time.Time
	LastLogin        *time.Time
	IsActive         bool
}

func newUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
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

func newUserOutputs(users []*entity.User) []*UserOutput {
	outputs := make([]*UserOutput, 0, len(users))
	for _, u := range users {
		outputs = append(outputs, newUserOutput(u))
	}
	return outputs
}
