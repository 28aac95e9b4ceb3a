package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the doctor-specific extension of a Profile.
type Doctor struct {
	ID                int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	SpecialtyID       *int      `gorm:"column:doctor_specialty_id;index" json:"doctor_specialty_id,omitempty"`
	LicenseNumber     string    `gorm:"type:varchar(50)" json:"license_number,omitempty"`
	RoomNumber        string    `gorm:"type:varchar(50)" json:"room_number,omitempty"`
	ClinicPhoneNumber string    `gorm:"type:varchar(50)" json:"clinic_phone_number,omitempty"`
	DoctorNote        string    `gorm:"type:text" json:"doctor_note,omitempty"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Profile        *Profile             `gorm:"foreignKey:UserID;references:UserID" json:"profile,omitempty"`
	Specialty      *Specialty           `gorm:"foreignKey:SpecialtyID" json:"specialty,omitempty"`
	HMOs           []HMO                `gorm:"many2many:doctor_hmos" json:"hmos,omitempty"`
	Availabilities []DoctorAvailability `gorm:"foreignKey:DoctorID" json:"availabilities,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DisplayName is "First Last", empty when the profile was not loaded.
func (d *Doctor) DisplayName() string {
	return d.Profile.FullName()
}

// SpecialtyName returns nil when the doctor has no specialty.
func (d *Doctor) SpecialtyName() *string {
	if d.Specialty == nil {
		return nil
	}
	name := d.Specialty.Name
	return &name
}
