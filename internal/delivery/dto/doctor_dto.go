package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

// UpdateDoctorProfileRequest edits the caller's own profile. A nil HMOIDs
// leaves accepted HMOs untouched; an empty list removes them all.
type UpdateDoctorProfileRequest struct {
	Email             string `json:"email" validate:"required,email,max=255"`
	FirstName         string `json:"first_name" validate:"required,max=255"`
	MiddleName        string `json:"middle_name" validate:"required,max=255"`
	LastName          string `json:"last_name" validate:"required,max=255"`
	SpecialtyID       *int   `json:"doctor_specialty_id" validate:"omitempty,gt=0"`
	LicenseNumber     string `json:"license_number" validate:"omitempty,max=50"`
	RoomNumber        string `json:"room_number" validate:"omitempty,max=50"`
	ClinicPhoneNumber string `json:"clinic_phone_number" validate:"omitempty,max=50"`
	DoctorNote        string `json:"doctor_note"`
	HMOIDs            []int  `json:"hmo_ids" validate:"omitempty,dive,gt=0"`
}

// Response DTOs

type DoctorProfileResponse struct {
	ID                int                `json:"id"`
	UserID            uuid.UUID          `json:"user_id"`
	Email             string             `json:"email"`
	FirstName         string             `json:"first_name"`
	MiddleName        string             `json:"middle_name,omitempty"`
	LastName          string             `json:"last_name"`
	FullName          string             `json:"full_name"`
	ProfilePictureURL *string            `json:"profile_picture_url"`
	Specialty         *SpecialtyResponse `json:"specialty"`
	LicenseNumber     string             `json:"license_number"`
	RoomNumber        string             `json:"room_number"`
	ClinicPhoneNumber string             `json:"clinic_phone_number"`
	DoctorNote        string             `json:"doctor_note"`
	HMOs              []HMOResponse      `json:"hmos"`
}
