package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

// PictureURL turns a stored profile picture path into a public URL, nil when
// there is no picture.
type PictureURL func(path string) *string

// DoctorToProfileResponse expects Profile and Profile.User to be loaded.
func DoctorToProfileResponse(doctor *entity.Doctor, pictureURL PictureURL) *dto.DoctorProfileResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorProfileResponse{
		ID:                doctor.ID,
		UserID:            doctor.UserID,
		FullName:          doctor.DisplayName(),
		Specialty:         SpecialtyToResponse(doctor.Specialty),
		LicenseNumber:     doctor.LicenseNumber,
		RoomNumber:        doctor.RoomNumber,
		ClinicPhoneNumber: doctor.ClinicPhoneNumber,
		DoctorNote:        doctor.DoctorNote,
		HMOs:              HMOsToResponses(doctor.HMOs),
	}

	if profile := doctor.Profile; profile != nil {
		response.FirstName = profile.FirstName
		response.MiddleName = profile.MiddleName
		response.LastName = profile.LastName
		response.ProfilePictureURL = pictureURL(profile.ProfilePicture)
		if profile.User != nil {
			response.Email = profile.User.Email
		}
	}

	return response
}
