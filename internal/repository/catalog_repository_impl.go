package repository

import (
	"errors"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type catalogRepository struct{}

func NewCatalogRepository() domainRepo.CatalogRepository {
	return &catalogRepository{}
}

func (r *catalogRepository) FindAllSpecialties(db *gorm.DB) ([]entity.Specialty, error) {
	var specialties []entity.Specialty
	if err := db.Order("name ASC").Find(&specialties).Error; err != nil {
		return nil, err
	}
	return specialties, nil
}

func (r *catalogRepository) FindSpecialtyByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	var specialty entity.Specialty
	err := db.Where("id = ?", id).First(&specialty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialty, nil
}

func (r *catalogRepository) FindAllHMOs(db *gorm.DB) ([]entity.HMO, error) {
	var hmos []entity.HMO
	if err := db.Order("name ASC").Find(&hmos).Error; err != nil {
		return nil, err
	}
	return hmos, nil
}

func (r *catalogRepository) FindHMOsByIDs(db *gorm.DB, ids []int) ([]entity.HMO, error) {
	if len(ids) == 0 {
		return []entity.HMO{}, nil
	}
	var hmos []entity.HMO
	if err := db.Where("id IN ?", ids).Order("name ASC").Find(&hmos).Error; err != nil {
		return nil, err
	}
	return hmos, nil
}

func (r *catalogRepository) FindAllServiceCategories(db *gorm.DB) ([]entity.ServiceCategory, error) {
	var categories []entity.ServiceCategory
	err := db.
		Preload("Services", func(tx *gorm.DB) *gorm.DB { return tx.Order("name ASC") }).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
