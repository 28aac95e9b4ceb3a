package entity

import "strings"

// TimePeriod buckets availability start times into morning and afternoon.
type TimePeriod string

const (
	TimePeriodAM TimePeriod = "AM"
	TimePeriodPM TimePeriod = "PM"
)

// ParseTimePeriod maps "AM" (any case) to TimePeriodAM and everything else to
// TimePeriodPM.
func ParseTimePeriod(s string) TimePeriod {
	if strings.EqualFold(strings.TrimSpace(s), string(TimePeriodAM)) {
		return TimePeriodAM
	}
	return TimePeriodPM
}

// StartWindow returns the inclusive start_time bounds of the bucket.
func (p TimePeriod) StartWindow() (from, to string) {
	if p == TimePeriodAM {
		return "00:00:00", "11:59:59"
	}
	return "12:00:00", "23:59:59"
}

// DoctorSearchCriteria is what a patient typed into the doctor finder. Every
// field is optional.
type DoctorSearchCriteria struct {
	Name        string
	SpecialtyID *int
	HMOID       *int
	Days        []string
	Time        string
}

// DoctorSearchFilter is the normalised form of DoctorSearchCriteria handed to
// the repository. Zero-valued fields mean "no predicate".
type DoctorSearchFilter struct {
	// NamePattern is the lowercased, LIKE-escaped full name text.
	NamePattern string
	// NameParts holds the first two escaped tokens when the text has at least two.
	NameParts   []string
	SpecialtyID *int
	HMOID       *int
	Days        []string
	StartFrom   string
	StartTo     string
}

func (f *DoctorSearchFilter) HasName() bool {
	return f.NamePattern != ""
}

func (f *DoctorSearchFilter) HasTimeWindow() bool {
	return f.StartFrom != "" && f.StartTo != ""
}
