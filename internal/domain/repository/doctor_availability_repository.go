package repository

import (
	"clinic-portal/internal/domain/entity"

	"gorm.io/gorm"
)

// DoctorAvailabilityRepository is the store of weekly availability windows.
type DoctorAvailabilityRepository interface {
	// ListByDoctor orders by weekday rank, then start time.
	ListByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error)
	// ReplaceAll swaps the doctor's whole set in one transaction and assigns
	// the new row ids back onto entries.
	ReplaceAll(db *gorm.DB, doctorID int, entries []entity.DoctorAvailability) error
	// Clear succeeds even when the doctor has no rows.
	Clear(db *gorm.DB, doctorID int) (int64, error)
}
