package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	Start string `json:"start_time" validate:"required,hhmm"`
	End   string `json:"end_time" validate:"required,hhmm"`
}

type block struct {
	Days    []string `json:"selectedDays" validate:"required,min=1,dive,required"`
	Windows []window `json:"timeRanges" validate:"required,min=1,dive"`
}

type request struct {
	Email  string  `json:"email" validate:"required,email"`
	Blocks []block `json:"schedules" validate:"required,min=1,dive"`
}

func TestIsClock(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, IsClock(ok), ok)
	}
	for _, bad := range []string{"9:30", "24:00", "12:60", "12:00:00", "noon", ""} {
		assert.False(t, IsClock(bad), bad)
	}
}

func TestFormatValidationErrors_KeysByJSONPath(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&request{
		Email: "not-an-email",
		Blocks: []block{
			{Days: []string{"monday"}, Windows: []window{{Start: "09:00", End: "10:00"}, {Start: "9am", End: ""}}},
		},
	})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, map[string]string{
		"email":                                 "email must be a valid email address",
		"schedules[0].timeRanges[1].start_time": "start_time must be a time in HH:MM format",
		"schedules[0].timeRanges[1].end_time":   "end_time is required",
	}, fields)
}

func TestFormatValidationErrors_EmptyCollections(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&request{Email: "a@b.co", Blocks: []block{{Days: []string{}, Windows: nil}}})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	assert.Equal(t, "selectedDays must contain at least 1 item(s)", fields["schedules[0].selectedDays"])
	assert.Equal(t, "timeRanges is required", fields["schedules[0].timeRanges"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(assert.AnError))
}
