// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/payment-system/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user. The store assigns the id and
	// registration date and writes them back onto the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all users ordered by id.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindActive retrieves active users ordered by last name.
	FindActive(ctx context.Context) ([]*entity.User, error)

	// Update overwrites the mutable fields of an existing user. The
	// password hash and registration date are never changed. Returns
	// whether a row was affected.
	Update(ctx context.Context, user *entity.User) (bool, error)

	// Delete removes a user row. Returns whether a row was affected.
	Delete(ctx context.Context, id int64) (bool, error)

	// Deactivate flips is_active to false, retaining the row. Returns
	// whether a row was affected.
	Deactivate(ctx context.Context, id int64) (bool, error)

	// SearchByLastName retrieves users whose last name contains the given
	// fragment, case-insensitively, ordered by last name.
	SearchByLastName(ctx context.Context, lastName string) ([]*entity.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
