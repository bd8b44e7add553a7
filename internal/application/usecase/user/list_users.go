// Package user contains user-related use cases.
package user

import (
	"context"

	"github.com/payment-system/backend/internal/application/adapter"
)

// ListUsersInput selects which users to list.
type ListUsersInput struct {
	ActiveOnly bool
}

// ListUsersOutput carries the listed users and the total user count.
type ListUsersOutput struct {
	Users []*UserOutput
	Total int64
}

// ListUsersUseCase lists users, either all of them or active ones only.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute lists users according to the input.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	var err error
	var users []*UserOutput

	if input.ActiveOnly {
		active, ferr := uc.userRepo.FindActive(ctx)
		err = ferr
		users = newUserOutputs(active)
	} else {
		all, ferr := uc.userRepo.FindAll(ctx)
		err = ferr
		users = newUserOutputs(all)
	}
	if err != nil {
		return nil, err
	}

	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ListUsersOutput{Users: users, Total: total}, nil
}
