// Package user contains user-related use cases.
package user

import (
	"context"

	"github.com/payment-system/backend/internal/application/adapter"
)

// SearchUsersUseCase finds users by a case-insensitive last name fragment.
type SearchUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewSearchUsersUseCase creates a new SearchUsersUseCase instance.
func NewSearchUsersUseCase(userRepo adapter.UserRepository) *SearchUsersUseCase {
	return &SearchUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the matching users, empty when nothing matches.
func (uc *SearchUsersUseCase) Execute(ctx context.Context, lastName string) ([]*UserOutput, error) {
	users, err := uc.userRepo.SearchByLastName(ctx, lastName)
	if err != nil {
		return nil, err
	}
	return newUserOutputs(users), nil
}
