// Package seed loads reference data and a demo doctor into an empty database.
package seed

import (
	"context"
	"fmt"

	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoDoctorEmail    = "doctor@clinic.test"
	DemoDoctorPassword = "password"
)

var roles = []entity.Role{
	{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin, Description: "Administrator"},
	{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor, Description: "Doctor"},
	{ID: entity.RoleIDPatient, RoleName: entity.RolePatient, Description: "Patient"},
	{ID: entity.RoleIDStaff, RoleName: entity.RoleStaff, Description: "Staff"},
}

var specialties = []string{
	"Cardiology", "Dermatology", "Family Medicine", "Internal Medicine",
	"Obstetrics and Gynecology", "Ophthalmology", "Pediatrics",
}

var hmos = []string{"Intellicare", "Maxicare", "Medicard", "PhilCare", "Valucare"}

type serviceSeed struct {
	name, description, price string
}

var serviceCatalog = []struct {
	name, description string
	services          []serviceSeed
}{
	{
		name:        "Laboratory",
		description: "Blood and urine tests processed on site.",
		services: []serviceSeed{
			{"Complete Blood Count", "CBC with platelet count", "350.00"},
			{"Fasting Blood Sugar", "Glucose after an 8 hour fast", "180.00"},
			{"Urinalysis", "Routine urine examination", "150.00"},
		},
	},
	{
		name:        "Imaging",
		description: "Radiology and ultrasound.",
		services: []serviceSeed{
			{"Chest X-Ray", "PA view", "550.00"},
			{"Whole Abdomen Ultrasound", "Liver, gallbladder, pancreas, spleen and kidneys", "2200.00"},
		},
	},
	{
		name:        "Consultation",
		description: "Outpatient consultations.",
		services: []serviceSeed{
			{"General Consultation", "Walk-in or scheduled", "500.00"},
			{"Specialist Consultation", "By appointment", "800.00"},
		},
	},
}

// demoSchedule is mornings on weekdays and a Saturday afternoon.
var demoSchedule = []entity.DoctorAvailability{
	{DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"},
	{DayOfWeek: entity.Wednesday, StartTime: "09:00:00", EndTime: "12:00:00"},
	{DayOfWeek: entity.Friday, StartTime: "09:00:00", EndTime: "12:00:00"},
	{DayOfWeek: entity.Saturday, StartTime: "13:00:00", EndTime: "16:00:00"},
}

// Seeder is idempotent: rows that already exist are left alone.
type Seeder struct {
	db               *gorm.DB
	log              *logrus.Logger
	availabilityRepo repository.DoctorAvailabilityRepository
}

func NewSeeder(db *gorm.DB, log *logrus.Logger, availabilityRepo repository.DoctorAvailabilityRepository) *Seeder {
	return &Seeder{db: db, log: log, availabilityRepo: availabilityRepo}
}

func (s *Seeder) Run(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			fn   func(tx *gorm.DB) error
		}{
			{"roles", seedRoles},
			{"specialties", seedSpecialties},
			{"hmos", seedHMOs},
			{"services", seedServices},
			{"demo doctor", s.seedDemoDoctor},
		}

		for _, step := range steps {
			if err := step.fn(tx); err != nil {
				return fmt.Errorf("seed %s: %w", step.name, err)
			}
			s.log.WithField("step", step.name).Info("Seeded")
		}
		return nil
	})
}

func seedRoles(tx *gorm.DB) error {
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(&roles).Error
}

func seedSpecialties(tx *gorm.DB) error {
	rows := make([]entity.Specialty, len(specialties))
	for i, name := range specialties {
		rows[i] = entity.Specialty{Name: name}
	}
	return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).Create(&rows).Error
}

func seedHMOs(tx *gorm.DB) error {
	rows := make([]entity.HMO, len(hmos))
	for i, name := range hmos {
		rows[i] = entity.HMO{Name: name}
	}
	return tx.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&rows).Error
}

// seedServices only fills an empty catalog; categories have no natural key.
func seedServices(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&entity.ServiceCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := make([]entity.ServiceCategory, len(serviceCatalog))
	for i, c := range serviceCatalog {
		services := make([]entity.Service, len(c.services))
		for j, svc := range c.services {
			price, err := decimal.NewFromString(svc.price)
			if err != nil {
				return fmt.Errorf("price of %s: %w", svc.name, err)
			}
			services[j] = entity.Service{Name: svc.name, Description: svc.description, Price: price}
		}
		categories[i] = entity.ServiceCategory{Name: c.name, Description: c.description, Services: services}
	}
	return tx.Create(&categories).Error
}

func (s *Seeder) seedDemoDoctor(tx *gorm.DB) error {
	var existing int64
	if err := tx.Model(&entity.User{}).Where("email = ?", DemoDoctorEmail).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoDoctorPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDDoctor,
		Email:    DemoDoctorEmail,
		Password: string(hashed),
	}
	if err := tx.Omit(clause.Associations).Create(&user).Error; err != nil {
		return err
	}

	profile := entity.Profile{
		UserID:       user.ID,
		FirstName:    "Maria",
		MiddleName:   "Santos",
		LastName:     "Reyes",
		ContactEmail: DemoDoctorEmail,
	}
	if err := tx.Omit(clause.Associations).Create(&profile).Error; err != nil {
		return err
	}

	var specialty entity.Specialty
	if err := tx.Where("name = ?", "Internal Medicine").First(&specialty).Error; err != nil {
		return err
	}

	doctor := entity.Doctor{
		UserID:            user.ID,
		SpecialtyID:       &specialty.ID,
		LicenseNumber:     "PRC-0123456",
		RoomNumber:        "301",
		ClinicPhoneNumber: "(02) 8123 4567",
	}
	if err := tx.Omit(clause.Associations).Create(&doctor).Error; err != nil {
		return err
	}

	var accepted []entity.HMO
	if err := tx.Where("name IN ?", []string{"Maxicare", "Intellicare"}).Find(&accepted).Error; err != nil {
		return err
	}
	if err := tx.Model(&doctor).Omit("HMOs.*").Association("HMOs").Replace(accepted); err != nil {
		return err
	}

	schedule := make([]entity.DoctorAvailability, len(demoSchedule))
	copy(schedule, demoSchedule)
	return s.availabilityRepo.ReplaceAll(tx, doctor.ID, schedule)
}
