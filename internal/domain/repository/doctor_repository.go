package repository

import (
	"clinic-portal/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorRepository finders return nil, nil when no doctor matches.
type DoctorRepository interface {
	// FindByUserID loads the doctor with profile, user, specialty, HMOs and availabilities.
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	// FindIDByUserID loads only the doctor id, 0 when the user is not a doctor.
	FindIDByUserID(db *gorm.DB, userID uuid.UUID) (int, error)
	ExistsByID(db *gorm.DB, id int) (bool, error)
	Search(db *gorm.DB, filter *entity.DoctorSearchFilter) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	ReplaceHMOs(db *gorm.DB, doctor *entity.Doctor, hmos []entity.HMO) error
}
