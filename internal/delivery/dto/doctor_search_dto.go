package dto

// SearchDoctorsRequest is the doctor finder form. Every field is optional.
type SearchDoctorsRequest struct {
	Name      string   `json:"name"`
	Specialty *int     `json:"specialty" validate:"omitempty,gt=0"`
	HMO       *int     `json:"hmo" validate:"omitempty,gt=0"`
	Days      []string `json:"days"`
	Time      string   `json:"time"`
	Debug     bool     `json:"debug"`
}

// SearchMode picks the shape of a search result.
type SearchMode string

const (
	SearchModeRaw      SearchMode = "raw"
	SearchModeFragment SearchMode = "fragment"
	SearchModeJSON     SearchMode = "json"
)

// SearchPayload is implemented only by the payload types in this file.
type SearchPayload interface {
	Mode() SearchMode
}

type AvailabilityTuple struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type RawDoctor struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Specialty      *string             `json:"specialty"`
	HMOs           []string            `json:"hmos"`
	Availabilities []AvailabilityTuple `json:"availabilities"`
}

// RawSearchPayload is the debug view of a search.
type RawSearchPayload struct {
	Doctors []RawDoctor `json:"doctors"`
	Count   int         `json:"count"`
}

func (RawSearchPayload) Mode() SearchMode { return SearchModeRaw }

// FragmentSearchPayload carries one rendered card per doctor, concatenated.
type FragmentSearchPayload struct {
	HTML  string `json:"html"`
	Count int    `json:"count"`
}

func (FragmentSearchPayload) Mode() SearchMode { return SearchModeFragment }

type DoctorCardResponse struct {
	ID                int                 `json:"id"`
	Name              string              `json:"name"`
	Specialty         *string             `json:"specialty"`
	ProfilePictureURL *string             `json:"profile_picture_url"`
	HMOs              []string            `json:"hmos"`
	Availabilities    []AvailabilityTuple `json:"availabilities"`
}

type CardSearchPayload []DoctorCardResponse

func (CardSearchPayload) Mode() SearchMode { return SearchModeJSON }

// DayWindows lists the formatted windows of one weekday, e.g. "9:00 AM - 12:00 PM".
type DayWindows struct {
	Day     string
	Windows []string
}

// DoctorCard is everything the result card template shows for one doctor.
type DoctorCard struct {
	ID                int
	Name              string
	Specialty         string
	ProfilePictureURL *string
	RoomNumber        string
	Schedule          []DayWindows
	Days              string
	TimeRange         string
	AcceptedHMOs      string
}
