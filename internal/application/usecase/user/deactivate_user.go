// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// DeactivateUserUseCase flips a user to inactive while retaining the row.
type DeactivateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeactivateUserUseCase creates a new DeactivateUserUseCase instance.
func NewDeactivateUserUseCase(userRepo adapter.UserRepository) *DeactivateUserUseCase {
	return &DeactivateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute deactivates the user.
func (uc *DeactivateUserUseCase) Execute(ctx context.Context, id int64) error {
	affected, err := uc.userRepo.Deactivate(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if !affected {
		return domainerror.ErrUserNotFound
	}
	return nil
}
