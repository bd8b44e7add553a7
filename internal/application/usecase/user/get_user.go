// Package user contains user-related use cases.
package user

import (
	"context"

	"github.com/payment-system/backend/internal/application/adapter"
)

// GetUserUseCase retrieves a single user by id or by email.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
	}
}

// ByID retrieves a user by id.
func (uc *GetUserUseCase) ByID(ctx context.Context, id int64) (*UserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newUserOutput(user), nil
}

// ByEmail retrieves a user by email address.
func (uc *GetUserUseCase) ByEmail(ctx context.Context, email string) (*UserOutput, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return newUserOutput(user), nil
}
