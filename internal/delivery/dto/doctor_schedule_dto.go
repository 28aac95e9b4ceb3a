package dto

// Request DTOs

// SaveScheduleRequest replaces the caller's whole weekly schedule. With Clear
// set, Schedules is ignored and every window is removed.
type SaveScheduleRequest struct {
	Clear     bool            `json:"clear"`
	Schedules []ScheduleBlock `json:"schedules" validate:"required,min=1,dive"`
}

// ScheduleBlock applies every time range to every selected day.
type ScheduleBlock struct {
	SelectedDays []SelectedDay `json:"selectedDays" validate:"required,min=1,dive"`
	TimeRanges   []TimeRange   `json:"timeRanges" validate:"required,min=1,dive"`
}

type SelectedDay struct {
	Name string `json:"name" validate:"required"`
}

type TimeRange struct {
	StartTime string `json:"start_time" validate:"required,hhmm"` // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required,hhmm"`   // Format: HH:MM
}

// Response DTOs

type AvailabilityResponse struct {
	ID        int    `json:"id"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ScheduleResponse struct {
	DoctorID       int                    `json:"doctor_id"`
	Availabilities []AvailabilityResponse `json:"availabilities"`
	Total          int                    `json:"total"`
}

type ClearScheduleResponse struct {
	DoctorID int   `json:"doctor_id"`
	Removed  int64 `json:"removed"`
}
