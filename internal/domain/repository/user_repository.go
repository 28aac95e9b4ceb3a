package repository

import (
	"clinic-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	// FindByEmail returns nil, nil when no user has the address.
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	UpdateProfile(db *gorm.DB, profile *entity.Profile) error
}
