package converter

import (
	"strings"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
)

const (
	cardClockLayout = "3:04 PM"
	noSchedule      = "No schedule"
	noHMOs          = "None"
	noSpecialty     = "-"
)

func DoctorsToRawPayload(doctors []entity.Doctor) dto.RawSearchPayload {
	raw := make([]dto.RawDoctor, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		raw[i] = dto.RawDoctor{
			ID:             d.ID,
			Name:           d.DisplayName(),
			Specialty:      d.SpecialtyName(),
			HMOs:           hmoNames(d.HMOs, false),
			Availabilities: AvailabilitiesToTuples(d.Availabilities),
		}
	}
	return dto.RawSearchPayload{Doctors: raw, Count: len(raw)}
}

func DoctorsToCardPayload(doctors []entity.Doctor, pictureURL PictureURL) dto.CardSearchPayload {
	cards := make(dto.CardSearchPayload, len(doctors))
	for i := range doctors {
		d := &doctors[i]
		cards[i] = dto.DoctorCardResponse{
			ID:                d.ID,
			Name:              d.DisplayName(),
			Specialty:         d.SpecialtyName(),
			ProfilePictureURL: profilePictureURL(d, pictureURL),
			HMOs:              hmoNames(d.HMOs, false),
			Availabilities:    AvailabilitiesToTuples(d.Availabilities),
		}
	}
	return cards
}

// DoctorToCard derives the display fields of a search result card.
func DoctorToCard(d *entity.Doctor, pictureURL PictureURL) dto.DoctorCard {
	card := dto.DoctorCard{
		ID:                d.ID,
		Name:              d.DisplayName(),
		Specialty:         noSpecialty,
		ProfilePictureURL: profilePictureURL(d, pictureURL),
		RoomNumber:        d.RoomNumber,
		Schedule:          groupByDay(d.Availabilities),
		Days:              noSchedule,
		TimeRange:         noSchedule,
		AcceptedHMOs:      noHMOs,
	}

	if name := d.SpecialtyName(); name != nil && *name != "" {
		card.Specialty = *name
	}

	if len(card.Schedule) > 0 {
		days := make([]string, len(card.Schedule))
		for i, group := range card.Schedule {
			days[i] = group.Day
		}
		card.Days = strings.Join(days, ", ")
		card.TimeRange = collapsedRange(d.Availabilities)
	}

	if names := hmoNames(d.HMOs, true); len(names) > 0 {
		card.AcceptedHMOs = strings.Join(names, ", ")
	}

	return card
}

func profilePictureURL(d *entity.Doctor, pictureURL PictureURL) *string {
	if d.Profile == nil || pictureURL == nil {
		return nil
	}
	return pictureURL(d.Profile.ProfilePicture)
}

func hmoNames(hmos []entity.HMO, distinct bool) []string {
	names := make([]string, 0, len(hmos))
	seen := make(map[string]bool, len(hmos))
	for _, h := range hmos {
		if distinct && seen[h.Name] {
			continue
		}
		seen[h.Name] = true
		names = append(names, h.Name)
	}
	return names
}

// groupByDay orders days monday first; unknown day values sort last.
func groupByDay(availabilities []entity.DoctorAvailability) []dto.DayWindows {
	sorted := make([]entity.DoctorAvailability, len(availabilities))
	copy(sorted, availabilities)
	entity.SortAvailabilities(sorted)

	var groups []dto.DayWindows
	for _, a := range sorted {
		label := entity.CapitalizeName(string(a.DayOfWeek))
		window := formatClock(a.StartTime) + " - " + formatClock(a.EndTime)
		if n := len(groups); n > 0 && groups[n-1].Day == label {
			groups[n-1].Windows = append(groups[n-1].Windows, window)
			continue
		}
		groups = append(groups, dto.DayWindows{Day: label, Windows: []string{window}})
	}
	return groups
}

// collapsedRange spans the earliest start to the latest end across all days.
func collapsedRange(availabilities []entity.DoctorAvailability) string {
	start, end := availabilities[0].StartTime, availabilities[0].EndTime
	for _, a := range availabilities[1:] {
		if a.StartTime < start {
			start = a.StartTime
		}
		if a.EndTime > end {
			end = a.EndTime
		}
	}
	return formatClock(start) + " - " + formatClock(end)
}

// formatClock renders "13:30:00" as "1:30 PM", leaving unparseable input as is.
func formatClock(s string) string {
	t, ok := entity.ParseClock(s)
	if !ok {
		return s
	}
	return t.Format(cardClockLayout)
}
