// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/payment-system/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID               int64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	FirstName        string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName         string     `gorm:"column:last_name;type:varchar(100);not null;index"`
	Email            string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	Phone            string     `gorm:"column:phone;type:varchar(30)"`
	PasswordHash     string     `gorm:"column:password_hash;type:varchar(255);not null"`
	DateOfBirth      *time.Time `gorm:"column:date_of_birth;type:date"`
	RegistrationDate time.Time  `gorm:"column:registration_date;not null"`
	LastLogin        *time.Time `gorm:"column:last_login"`
	IsActive         bool       `gorm:"column:is_active;default:true"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		PasswordHash:     m.PasswordHash,
		DateOfBirth:      m.DateOfBirth,
		RegistrationDate: m.RegistrationDate,
		LastLogin:        m.LastLogin,
		IsActive:         m.IsActive,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:               user.ID,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Email:            user.Email,
		Phone:            user.Phone,
		PasswordHash:     user.PasswordHash,
		DateOfBirth:      user.DateOfBirth,
		RegistrationDate: user.RegistrationDate,
		LastLogin:        user.LastLogin,
		IsActive:         user.IsActive,
	}
}
