// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/payment-system/backend/internal/application/adapter"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// UpdateUserInput carries the full replacement state for a user's
// mutable fields.
type UpdateUserInput struct {
	UserID      int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	IsActive    bool
}

// UpdateUserUseCase overwrites a user's mutable fields. The password
// hash and registration date are never touched.
type UpdateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the update and returns the refreshed user.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*UserOutput, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserName,
			"first and last name are required",
			domainerror.ErrMissingUserName,
		)
	}
	if input.Email == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingEmail,
			"email is required",
			domainerror.ErrMissingEmail,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Phone = input.Phone
	user.DateOfBirth = input.DateOfBirth
	user.IsActive = input.IsActive

	affected, err := uc.userRepo.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !affected {
		return nil, domainerror.ErrUserNotFound
	}

	return newUserOutput(user), nil
}
