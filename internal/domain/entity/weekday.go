package entity

import "strings"

// Weekday is a lowercase English day name as stored in doctor_availabilities.day_of_week.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays lists every day in rank order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts any casing and surrounding whitespace.
func ParseWeekday(s string) (Weekday, bool) {
	d := Weekday(strings.ToLower(strings.TrimSpace(s)))
	return d, d.Rank() > 0
}

// Rank is 1 for monday through 7 for sunday, 0 for anything else.
func (d Weekday) Rank() int {
	for i, w := range Weekdays {
		if w == d {
			return i + 1
		}
	}
	return 0
}

// Label returns the capitalised name, e.g. "Monday".
func (d Weekday) Label() string {
	return CapitalizeName(string(d))
}

func (d Weekday) sortKey() int {
	if r := d.Rank(); r > 0 {
		return r
	}
	return len(Weekdays) + 1
}
