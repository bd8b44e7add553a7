// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// DeleteUserUseCase removes a user row permanently. Prefer
// DeactivateUserUseCase when history must be retained.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute deletes the user.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) error {
	affected, err := uc.userRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !affected {
		return domainerror.ErrUserNotFound
	}
	return nil
}
