// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// RegisterUserInput represents the data required to register a user.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// RegisterUserOutput represents the result of a registration.
type RegisterUserOutput struct {
	UserID int64
	Email  string
}

// RegisterUserUseCase registers a new user, rejecting duplicate email
// addresses before touching the store.
type RegisterUserUseCase struct {
	userRepo  adapter.UserRepository
	passwords adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(userRepo adapter.UserRepository, passwords adapter.PasswordService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:  userRepo,
		passwords: passwords,
	}
}

// Execute validates the input and persists the new user.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
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

	existing, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeEmailAlreadyExists,
			fmt.Sprintf("email %s is already registered", input.Email),
			domainerror.ErrEmailAlreadyExists,
		)
	}

	user := entity.NewUser(input.FirstName, input.LastName, input.Email, input.Phone)

	if input.Password != "" {
		hash, err := uc.passwords.Hash(input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &RegisterUserOutput{UserID: user.ID, Email: user.Email}, nil
}
