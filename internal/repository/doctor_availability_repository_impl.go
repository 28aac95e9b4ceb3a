package repository

import (
	"fmt"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// weekdayRankOrder sorts monday first and sunday last instead of alphabetically.
const weekdayRankOrder = `CASE day_of_week
	WHEN 'monday' THEN 1
	WHEN 'tuesday' THEN 2
	WHEN 'wednesday' THEN 3
	WHEN 'thursday' THEN 4
	WHEN 'friday' THEN 5
	WHEN 'saturday' THEN 6
	WHEN 'sunday' THEN 7
END`

const insertBatchSize = 100

type doctorAvailabilityRepository struct{}

func NewDoctorAvailabilityRepository() domainRepo.DoctorAvailabilityRepository {
	return &doctorAvailabilityRepository{}
}

func (r *doctorAvailabilityRepository) ListByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error) {
	var availabilities []entity.DoctorAvailability
	err := orderByWeekday(db.Where("doctor_id = ?", doctorID)).Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

// ReplaceAll locks the doctor row first so two replacements of the same
// doctor cannot interleave their delete and insert.
func (r *doctorAvailabilityRepository) ReplaceAll(db *gorm.DB, doctorID int, entries []entity.DoctorAvailability) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var doctor entity.Doctor
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", doctorID).
			First(&doctor).Error
		if err != nil {
			return fmt.Errorf("lock doctor %d: %w", doctorID, err)
		}

		if err := tx.Where("doctor_id = ?", doctorID).Delete(&entity.DoctorAvailability{}).Error; err != nil {
			return fmt.Errorf("delete availabilities of doctor %d: %w", doctorID, err)
		}

		if len(entries) == 0 {
			return nil
		}

		rows := make([]entity.DoctorAvailability, len(entries))
		for i, entry := range entries {
			entry.ID = 0
			entry.DoctorID = doctorID
			rows[i] = entry
		}

		if err := tx.CreateInBatches(&rows, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert availabilities of doctor %d: %w", doctorID, err)
		}
		for i := range rows {
			entries[i].ID = rows[i].ID
			entries[i].DoctorID = doctorID
		}
		return nil
	})
}

func (r *doctorAvailabilityRepository) Clear(db *gorm.DB, doctorID int) (int64, error) {
	result := db.Where("doctor_id = ?", doctorID).Delete(&entity.DoctorAvailability{})
	return result.RowsAffected, result.Error
}

func orderByWeekday(db *gorm.DB) *gorm.DB {
	return db.Order(weekdayRankOrder).Order("start_time ASC")
}
