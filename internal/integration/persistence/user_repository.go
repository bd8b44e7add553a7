// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/payment-system/backend/internal/application/adapter"
	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
	"github.com/payment-system/backend/internal/integration/persistence/model"
)

// placeholderPasswordHash is stored when a user is created without a
// password. A bootstrap convenience, not a security mechanism.
const placeholderPasswordHash = "default_hash"

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user and writes the store-assigned id and
// registration date back onto the entity.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.UserFromEntity(user)
	if userModel.PasswordHash == "" {
		userModel.PasswordHash = placeholderPasswordHash
	}
	userModel.RegistrationDate = time.Now().UTC()

	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return result.Error
	}

	user.ID = userModel.ID
	user.PasswordHash = userModel.PasswordHash
	user.RegistrationDate = userModel.RegistrationDate
	return nil
}

// FindByID retrieves a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("user_id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindAll retrieves all users ordered by id.
func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).Order("user_id ASC").Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toUserEntities(userModels), nil
}

// FindActive retrieves active users ordered by last name.
func (r *userRepository) FindActive(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("last_name ASC").
		Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toUserEntities(userModels), nil
}

// Update overwrites the mutable fields of an existing user. The password
// hash and registration date are left untouched.
func (r *userRepository) Update(ctx context.Context, user *entity.User) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":    user.FirstName,
			"last_name":     user.LastName,
			"email":         user.Email,
			"phone":         user.Phone,
			"date_of_birth": user.DateOfBirth,
			"is_active":     user.IsActive,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a user row by id.
func (r *userRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&model.UserModel{}, "user_id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Deactivate flips is_active to false, retaining the row.
func (r *userRepository) Deactivate(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SearchByLastName retrieves users whose last name contains the given
// fragment, case-insensitively.
func (r *userRepository) SearchByLastName(ctx context.Context, lastName string) ([]*entity.User, error) {
	pattern := "%" + strings.ToLower(lastName) + "%"
	var userModels []model.UserModel
	result := r.db.WithContext(ctx).
		Where("LOWER(last_name) LIKE ?", pattern).
		Order("last_name ASC").
		Find(&userModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toUserEntities(userModels), nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func toUserEntities(userModels []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(userModels))
	for i, um := range userModels {
		users[i] = um.ToEntity()
	}
	return users
}
