package converter

import (
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

// AvailabilitiesToResponses keeps the storage order (weekday rank, then start time).
func AvailabilitiesToResponses(availabilities []entity.DoctorAvailability) []dto.AvailabilityResponse {
	responses := make([]dto.AvailabilityResponse, len(availabilities))
	for i, a := range availabilities {
		responses[i] = dto.AvailabilityResponse{
			ID:        a.ID,
			DayOfWeek: string(a.DayOfWeek),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		}
	}
	return responses
}

func ScheduleToResponse(doctorID int, availabilities []entity.DoctorAvailability) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		DoctorID:       doctorID,
		Availabilities: AvailabilitiesToResponses(availabilities),
		Total:          len(availabilities),
	}
}

func AvailabilitiesToTuples(availabilities []entity.DoctorAvailability) []dto.AvailabilityTuple {
	tuples := make([]dto.AvailabilityTuple, len(availabilities))
	for i, a := range availabilities {
		tuples[i] = dto.AvailabilityTuple{
			Day:   string(a.DayOfWeek),
			Start: a.StartTime,
			End:   a.EndTime,
		}
	}
	return tuples
}
