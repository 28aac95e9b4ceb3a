package entity

import (
	"sort"
	"time"

	"gorm.io/gorm"
)

const (
	ClockLayout      = "15:04:05"
	ShortClockLayout = "15:04"
)

// DoctorAvailability is one recurring weekly window. Rows are never updated in
// place: a doctor's whole set is replaced at once.
type DoctorAvailability struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  int       `gorm:"not null;index:idx_doctor_availabilities_doctor_day,priority:1" json:"doctor_id"`
	DayOfWeek Weekday   `gorm:"type:varchar(10);not null;index:idx_doctor_availabilities_doctor_day,priority:2" json:"day_of_week"`
	StartTime string    `gorm:"type:time;not null" json:"start_time"`
	EndTime   string    `gorm:"type:time;not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availabilities"
}

// AfterFind trims driver-specific fractional seconds so callers always see HH:MM:SS.
func (a *DoctorAvailability) AfterFind(tx *gorm.DB) error {
	a.StartTime = NormalizeClock(a.StartTime)
	a.EndTime = NormalizeClock(a.EndTime)
	return nil
}

// NormalizeClock rewrites "9:00", "09:00" or "09:00:00.000000" as "09:00:00".
// Unparseable input is returned unchanged.
func NormalizeClock(s string) string {
	if t, ok := ParseClock(s); ok {
		return t.Format(ClockLayout)
	}
	return s
}

// ParseClock parses a wall-clock time with or without seconds.
func ParseClock(s string) (time.Time, bool) {
	if t, err := time.Parse(ClockLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(ShortClockLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// SortAvailabilities orders rows monday first, then by start time. Rows with an
// unknown day sort last.
func SortAvailabilities(rows []DoctorAvailability) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i].DayOfWeek.sortKey(), rows[j].DayOfWeek.sortKey()
		if ri != rj {
			return ri < rj
		}
		return rows[i].StartTime < rows[j].StartTime
	})
}
