package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/infrastructure/storage"
	"clinic-portal/internal/infrastructure/view"
	"clinic-portal/internal/testutil"
	"clinic-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRenderer struct {
	err error
}

func (r stubRenderer) Render(card dto.DoctorCard) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "<card " + card.Name + ">", nil
}

func searchDoctor(id int, first, last string) *entity.Doctor {
	cardiology := entity.Specialty{ID: 1, Name: "Cardiology"}
	return &entity.Doctor{
		ID:        id,
		UserID:    uuid.New(),
		Profile:   &entity.Profile{FirstName: first, LastName: last, ProfilePicture: "avatars/" + first + ".jpg"},
		Specialty: &cardiology,
		HMOs:      []entity.HMO{{ID: 2, Name: "Maxicare"}},
		Availabilities: []entity.DoctorAvailability{
			{DayOfWeek: entity.Monday, StartTime: "09:00:00", EndTime: "12:00:00"},
		},
	}
}

func newSearchUsecase(t *testing.T, repo *fakeDoctorRepo, renderer view.DoctorCardRenderer) DoctorSearchUsecase {
	t.Helper()
	db, _ := testutil.NewFakeTxDB(t)
	return NewDoctorSearchUsecase(db, quietLogger(), validator.NewValidator(), repo, renderer, storage.NewURLResolver("http://clinic.test"))
}

func TestBuildSearchFilter_EmptyCriteria(t *testing.T) {
	filter := buildSearchFilter(entity.DoctorSearchCriteria{Name: "   ", Days: []string{"", " "}})

	assert.False(t, filter.HasName())
	assert.False(t, filter.HasTimeWindow())
	assert.Empty(t, filter.Days)
	assert.Nil(t, filter.SpecialtyID)
	assert.Nil(t, filter.HMOID)
}

func TestBuildSearchFilter_Name(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		pattern string
		parts   []string
	}{
		{name: "single token", input: "  SMITH ", pattern: "smith"},
		{name: "two tokens", input: "John  Smith", pattern: "john  smith", parts: []string{"john", "smith"}},
		{name: "three tokens keep first two", input: "ana maria cruz", pattern: "ana maria cruz", parts: []string{"ana", "maria"}},
		{name: "like metacharacters", input: `50%_off\`, pattern: `50\%\_off\\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := buildSearchFilter(entity.DoctorSearchCriteria{Name: tt.input})
			assert.Equal(t, tt.pattern, filter.NamePattern)
			assert.Equal(t, tt.parts, filter.NameParts)
		})
	}
}

func TestBuildSearchFilter_DaysAndTime(t *testing.T) {
	specialty, hmo := 3, 5
	filter := buildSearchFilter(entity.DoctorSearchCriteria{
		SpecialtyID: &specialty,
		HMOID:       &hmo,
		Days:        []string{"Monday", " WEDNESDAY "},
		Time:        "am",
	})

	assert.Equal(t, []string{"monday", "wednesday"}, filter.Days)
	assert.Equal(t, "00:00:00", filter.StartFrom)
	assert.Equal(t, "11:59:59", filter.StartTo)
	assert.Equal(t, 3, *filter.SpecialtyID)
	assert.Equal(t, 5, *filter.HMOID)

	pm := buildSearchFilter(entity.DoctorSearchCriteria{Time: "evening"})
	assert.Equal(t, "12:00:00", pm.StartFrom)
	assert.Equal(t, "23:59:59", pm.StartTo)
}

func TestSearch_PassesFilterToRepository(t *testing.T) {
	repo := newFakeDoctorRepo(searchDoctor(1, "Ada", "Lovelace"))
	uc := newSearchUsecase(t, repo, stubRenderer{})

	doctors, err := uc.Search(context.Background(), entity.DoctorSearchCriteria{Name: "ADA"})
	require.NoError(t, err)
	assert.Len(t, doctors, 1)
	assert.Equal(t, "ada", repo.lastQuery.NamePattern)
}

func TestSearch_RepositoryError(t *testing.T) {
	repo := newFakeDoctorRepo()
	repo.searchErr = errors.New("syntax error")
	uc := newSearchUsecase(t, repo, stubRenderer{})

	doctors, err := uc.Search(context.Background(), entity.DoctorSearchCriteria{})

	var fault *InternalFault
	require.ErrorAs(t, err, &fault)
	assert.Nil(t, doctors)
	assert.Empty(t, fault.Trace)
}

func TestSearch_RecoversPanic(t *testing.T) {
	repo := newFakeDoctorRepo()
	repo.searchFn = func(filter *entity.DoctorSearchFilter) []entity.Doctor {
		panic("nil map")
	}
	uc := newSearchUsecase(t, repo, stubRenderer{})

	doctors, err := uc.Search(context.Background(), entity.DoctorSearchCriteria{Name: "x"})

	var fault *InternalFault
	require.ErrorAs(t, err, &fault)
	assert.Nil(t, doctors)
	assert.Contains(t, fault.Error(), "nil map")
	assert.NotEmpty(t, fault.Trace)
}

func TestSearchDoctors_RawMode(t *testing.T) {
	repo := newFakeDoctorRepo(searchDoctor(1, "Ada", "Lovelace"), searchDoctor(2, "Alan", "Turing"))
	uc := newSearchUsecase(t, repo, stubRenderer{})

	payload, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchModeRaw)
	require.NoError(t, err)

	raw, ok := payload.(dto.RawSearchPayload)
	require.True(t, ok)
	assert.Equal(t, 2, raw.Count)
	assert.Equal(t, "Ada Lovelace", raw.Doctors[0].Name)
	assert.Equal(t, []dto.AvailabilityTuple{{Day: "monday", Start: "09:00:00", End: "12:00:00"}}, raw.Doctors[0].Availabilities)
}

func TestSearchDoctors_FragmentMode(t *testing.T) {
	repo := newFakeDoctorRepo(searchDoctor(1, "Ada", "Lovelace"), searchDoctor(2, "Alan", "Turing"))
	renderer, err := view.NewDoctorCardRenderer()
	require.NoError(t, err)
	uc := newSearchUsecase(t, repo, renderer)

	payload, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchModeFragment)
	require.NoError(t, err)

	fragment, ok := payload.(dto.FragmentSearchPayload)
	require.True(t, ok)
	assert.Equal(t, 2, fragment.Count)
	assert.Contains(t, fragment.HTML, "Ada Lovelace")
	assert.Contains(t, fragment.HTML, "Alan Turing")
	assert.Contains(t, fragment.HTML, "http://clinic.test/storage/avatars/Ada.jpg")
	assert.Less(t, strings.Index(fragment.HTML, "Ada Lovelace"), strings.Index(fragment.HTML, "Alan Turing"))
}

func TestSearchDoctors_FragmentRenderError(t *testing.T) {
	repo := newFakeDoctorRepo(searchDoctor(1, "Ada", "Lovelace"))
	uc := newSearchUsecase(t, repo, stubRenderer{err: errors.New("template broke")})

	_, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchModeFragment)

	var fault *InternalFault
	assert.ErrorAs(t, err, &fault)
}

func TestSearchDoctors_JSONMode(t *testing.T) {
	repo := newFakeDoctorRepo(searchDoctor(1, "Ada", "Lovelace"))
	uc := newSearchUsecase(t, repo, stubRenderer{})

	payload, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchModeJSON)
	require.NoError(t, err)

	cards, ok := payload.(dto.CardSearchPayload)
	require.True(t, ok)
	require.Len(t, cards, 1)
	assert.Equal(t, "http://clinic.test/storage/avatars/Ada.jpg", *cards[0].ProfilePictureURL)
	assert.Equal(t, "Cardiology", *cards[0].Specialty)
}

func TestSearchDoctors_EmptyResult(t *testing.T) {
	uc := newSearchUsecase(t, newFakeDoctorRepo(), stubRenderer{})

	payload, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchModeFragment)
	require.NoError(t, err)
	assert.Equal(t, dto.FragmentSearchPayload{HTML: "", Count: 0}, payload)
}

func TestSearchDoctors_ValidationError(t *testing.T) {
	repo := newFakeDoctorRepo()
	uc := newSearchUsecase(t, repo, stubRenderer{})
	zero := 0

	_, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{Specialty: &zero}, dto.SearchModeRaw)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "specialty")
	assert.Nil(t, repo.lastQuery)
}

func TestSearchDoctors_FreeTextTimeMeansAfternoon(t *testing.T) {
	morning := searchDoctor(1, "Ada", "Lovelace")
	afternoon := searchDoctor(2, "Alan", "Turing")
	afternoon.Availabilities[0].StartTime = "14:00:00"
	afternoon.Availabilities[0].EndTime = "17:00:00"

	repo := newFakeDoctorRepo(morning, afternoon)
	repo.searchFn = func(filter *entity.DoctorSearchFilter) []entity.Doctor {
		var matched []entity.Doctor
		for _, d := range []*entity.Doctor{morning, afternoon} {
			start := d.Availabilities[0].StartTime
			if start >= filter.StartFrom && start <= filter.StartTo {
				matched = append(matched, *d)
			}
		}
		return matched
	}
	uc := newSearchUsecase(t, repo, stubRenderer{})

	for _, tm := range []string{"pm", "evening", "afternoon", "not-a-period"} {
		payload, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{Time: tm}, dto.SearchModeRaw)
		require.NoError(t, err, tm)

		raw := payload.(dto.RawSearchPayload)
		require.Equal(t, 1, raw.Count, tm)
		assert.Equal(t, 2, raw.Doctors[0].ID, tm)
	}
}

func TestSearchDoctors_AcceptsRepeatedDays(t *testing.T) {
	repo := newFakeDoctorRepo()
	uc := newSearchUsecase(t, repo, stubRenderer{})
	days := []string{"monday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	_, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{Days: days}, dto.SearchModeRaw)
	require.NoError(t, err)
	require.NotNil(t, repo.lastQuery)
	assert.Len(t, repo.lastQuery.Days, len(days))
}

func TestSearchDoctors_UnknownMode(t *testing.T) {
	uc := newSearchUsecase(t, newFakeDoctorRepo(), stubRenderer{})

	_, err := uc.SearchDoctors(context.Background(), &dto.SearchDoctorsRequest{}, dto.SearchMode("xml"))

	var fault *InternalFault
	assert.ErrorAs(t, err, &fault)
}
