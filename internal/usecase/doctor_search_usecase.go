package usecase

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/internal/infrastructure/storage"
	"clinic-portal/internal/infrastructure/view"
	"clinic-portal/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type DoctorSearchUsecase interface {
	Search(ctx context.Context, criteria entity.DoctorSearchCriteria) ([]entity.Doctor, error)
	SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest, mode dto.SearchMode) (dto.SearchPayload, error)
}

type doctorSearchUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	validator  *validator.CustomValidator
	doctorRepo repository.DoctorRepository
	renderer   view.DoctorCardRenderer
	urls       storage.URLResolver
}

func NewDoctorSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	renderer view.DoctorCardRenderer,
	urls storage.URLResolver,
) DoctorSearchUsecase {
	return &doctorSearchUsecase{
		db:         db,
		log:        log,
		validator:  validator,
		doctorRepo: doctorRepo,
		renderer:   renderer,
		urls:       urls,
	}
}

// Search never returns partial results: a failure or panic anywhere in the
// query comes back as an *InternalFault.
func (u *doctorSearchUsecase) Search(ctx context.Context, criteria entity.DoctorSearchCriteria) (doctors []entity.Doctor, err error) {
	defer func() {
		if r := recover(); r != nil {
			trace := string(debug.Stack())
			u.log.WithFields(logrus.Fields{
				"criteria": criteria,
				"trace":    trace,
			}).Errorf("Doctor search panicked: %v", r)
			doctors = nil
			err = &InternalFault{Op: "search doctors", Err: fmt.Errorf("panic: %v", r), Trace: trace}
		}
	}()

	filter := buildSearchFilter(criteria)

	doctors, err = u.doctorRepo.Search(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.WithField("criteria", criteria).Warnf("Failed to search doctors: %+v", err)
		return nil, &InternalFault{Op: "search doctors", Err: err}
	}
	return doctors, nil
}

func (u *doctorSearchUsecase) SearchDoctors(ctx context.Context, req *dto.SearchDoctorsRequest, mode dto.SearchMode) (dto.SearchPayload, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, fromValidator(u.validator, err)
	}

	doctors, err := u.Search(ctx, entity.DoctorSearchCriteria{
		Name:        req.Name,
		SpecialtyID: req.Specialty,
		HMOID:       req.HMO,
		Days:        req.Days,
		Time:        req.Time,
	})
	if err != nil {
		return nil, err
	}

	switch mode {
	case dto.SearchModeRaw:
		return converter.DoctorsToRawPayload(doctors), nil
	case dto.SearchModeJSON:
		return converter.DoctorsToCardPayload(doctors, u.urls.PublicURL), nil
	case dto.SearchModeFragment:
		return u.renderFragment(doctors)
	default:
		return nil, &InternalFault{Op: "search doctors", Err: fmt.Errorf("unknown search mode %q", mode)}
	}
}

func (u *doctorSearchUsecase) renderFragment(doctors []entity.Doctor) (dto.SearchPayload, error) {
	var html strings.Builder
	for i := range doctors {
		card := converter.DoctorToCard(&doctors[i], u.urls.PublicURL)
		fragment, err := u.renderer.Render(card)
		if err != nil {
			u.log.WithField("doctor_id", card.ID).Warnf("Failed to render doctor card: %+v", err)
			return nil, &InternalFault{Op: "render doctor cards", Err: err}
		}
		html.WriteString(fragment)
	}
	return dto.FragmentSearchPayload{HTML: html.String(), Count: len(doctors)}, nil
}

// buildSearchFilter normalises criteria; anything left empty adds no predicate.
func buildSearchFilter(criteria entity.DoctorSearchCriteria) *entity.DoctorSearchFilter {
	filter := &entity.DoctorSearchFilter{
		SpecialtyID: criteria.SpecialtyID,
		HMOID:       criteria.HMOID,
	}

	if name := strings.ToLower(strings.TrimSpace(criteria.Name)); name != "" {
		filter.NamePattern = likeEscaper.Replace(name)
		if parts := strings.Fields(filter.NamePattern); len(parts) >= 2 {
			filter.NameParts = parts[:2]
		}
	}

	for _, day := range criteria.Days {
		if day = strings.ToLower(strings.TrimSpace(day)); day != "" {
			filter.Days = append(filter.Days, day)
		}
	}

	if strings.TrimSpace(criteria.Time) != "" {
		filter.StartFrom, filter.StartTo = entity.ParseTimePeriod(criteria.Time).StartWindow()
	}

	return filter
}
