package repository

import (
	"errors"
	"strings"

	"clinic-portal/internal/domain/entity"
	domainRepo "clinic-portal/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := preloadDoctorRelations(db).Preload("Profile.User").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := preloadDoctorRelations(db).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindIDByUserID(db *gorm.DB, userID uuid.UUID) (int, error) {
	var ids []int
	err := db.Model(&entity.Doctor{}).Where("user_id = ?", userID).Limit(1).Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	return ids[0], nil
}

func (r *doctorRepository) ExistsByID(db *gorm.DB, id int) (bool, error) {
	var count int64
	if err := db.Model(&entity.Doctor{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Search returns every doctor matching all predicates present in filter, with
// profile, specialty, HMOs and ordered availabilities loaded.
func (r *doctorRepository) Search(db *gorm.DB, filter *entity.DoctorSearchFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := preloadDoctorRelations(buildSearchQuery(db, filter)).Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Save(doctor).Error
}

func (r *doctorRepository) ReplaceHMOs(db *gorm.DB, doctor *entity.Doctor, hmos []entity.HMO) error {
	association := db.Model(doctor).Omit("HMOs.*").Association("HMOs")
	if len(hmos) == 0 {
		return association.Clear()
	}
	return association.Replace(hmos)
}

// buildSearchQuery only adds a WHERE clause for predicates the filter carries.
func buildSearchQuery(db *gorm.DB, filter *entity.DoctorSearchFilter) *gorm.DB {
	query := db.Model(&entity.Doctor{}).
		Select("doctors.*").
		Joins("LEFT JOIN profiles ON profiles.user_id = doctors.user_id")

	if filter == nil {
		return query
	}

	if filter.HasName() {
		condition, args := nameCondition(filter)
		query = query.Where(condition, args...)
	}
	if filter.SpecialtyID != nil {
		query = query.Where("doctors.doctor_specialty_id = ?", *filter.SpecialtyID)
	}
	if filter.HMOID != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM doctor_hmos WHERE doctor_hmos.doctor_id = doctors.id AND doctor_hmos.hmo_id = ?)",
			*filter.HMOID,
		)
	}
	if len(filter.Days) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM doctor_availabilities da WHERE da.doctor_id = doctors.id AND da.day_of_week IN ?)",
			filter.Days,
		)
	}
	if filter.HasTimeWindow() {
		query = query.Where(
			"EXISTS (SELECT 1 FROM doctor_availabilities da WHERE da.doctor_id = doctors.id AND da.start_time BETWEEN ? AND ?)",
			filter.StartFrom, filter.StartTo,
		)
	}

	return query
}

// likeEscape matches the backslash escaping applied to the search text.
const likeEscape = ` ESCAPE '\'`

// nameCondition matches either "first last" order for two-token input and
// the whole text against each name and both concatenations.
func nameCondition(filter *entity.DoctorSearchFilter) (string, []interface{}) {
	contains := func(s string) string { return "%" + s + "%" }

	var conditions []string
	var args []interface{}

	if len(filter.NameParts) >= 2 {
		a, b := contains(filter.NameParts[0]), contains(filter.NameParts[1])
		conditions = append(conditions,
			"(profiles.first_name ILIKE ?"+likeEscape+" AND profiles.last_name ILIKE ?"+likeEscape+")",
			"(profiles.first_name ILIKE ?"+likeEscape+" AND profiles.last_name ILIKE ?"+likeEscape+")",
		)
		args = append(args, a, b, b, a)
	}

	full := contains(filter.NamePattern)
	conditions = append(conditions,
		"profiles.first_name ILIKE ?"+likeEscape,
		"profiles.last_name ILIKE ?"+likeEscape,
		"CONCAT(profiles.first_name, ' ', profiles.last_name) ILIKE ?"+likeEscape,
		"CONCAT(profiles.last_name, ' ', profiles.first_name) ILIKE ?"+likeEscape,
	)
	args = append(args, full, full, full, full)

	return "(" + strings.Join(conditions, " OR ") + ")", args
}

func preloadDoctorRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Profile").
		Preload("Specialty").
		Preload("HMOs", func(tx *gorm.DB) *gorm.DB { return tx.Order("hmos.name ASC") }).
		Preload("Availabilities", orderByWeekday)
}
