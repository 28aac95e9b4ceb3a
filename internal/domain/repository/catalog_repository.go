package repository

import (
	"clinic-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	FindAllSpecialties(db *gorm.DB) ([]entity.Specialty, error)
	FindSpecialtyByID(db *gorm.DB, id int) (*entity.Specialty, error)
	FindAllHMOs(db *gorm.DB) ([]entity.HMO, error)
	FindHMOsByIDs(db *gorm.DB, ids []int) ([]entity.HMO, error)
	FindAllServiceCategories(db *gorm.DB) ([]entity.ServiceCategory, error)
}
