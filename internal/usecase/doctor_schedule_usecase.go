package usecase

import (
	"context"
	"fmt"
	"strconv"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/internal/service"
	"clinic-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const availabilityEntity = "doctor_availabilities"

type DoctorScheduleUsecase interface {
	GetMySchedule(ctx context.Context, userID uuid.UUID) (*dto.ScheduleResponse, error)
	GetDoctorAvailabilities(ctx context.Context, doctorID int) (*dto.ScheduleResponse, error)
	ClearSchedule(ctx context.Context, userID uuid.UUID) (*dto.ClearScheduleResponse, error)
	SaveSchedule(ctx context.Context, userID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error)
}

type doctorScheduleUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	validator        *validator.CustomValidator
	doctorRepo       repository.DoctorRepository
	availabilityRepo repository.DoctorAvailabilityRepository
	auditService     service.AuditService
}

func NewDoctorScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	doctorRepo repository.DoctorRepository,
	availabilityRepo repository.DoctorAvailabilityRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		db:               db,
		log:              log,
		validator:        validator,
		doctorRepo:       doctorRepo,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
	}
}

func (u *doctorScheduleUsecase) GetMySchedule(ctx context.Context, userID uuid.UUID) (*dto.ScheduleResponse, error) {
	doctorID, err := u.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	availabilities, err := u.availabilityRepo.ListByDoctor(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availabilities: %+v", err)
		return nil, &InternalFault{Op: "list schedule", Err: err}
	}

	return converter.ScheduleToResponse(doctorID, availabilities), nil
}

func (u *doctorScheduleUsecase) GetDoctorAvailabilities(ctx context.Context, doctorID int) (*dto.ScheduleResponse, error) {
	db := u.db.WithContext(ctx)

	exists, err := u.doctorRepo.ExistsByID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, &InternalFault{Op: "find doctor", Err: err}
	}
	if !exists {
		return nil, ErrDoctorNotFound
	}

	availabilities, err := u.availabilityRepo.ListByDoctor(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availabilities: %+v", err)
		return nil, &InternalFault{Op: "list schedule", Err: err}
	}

	return converter.ScheduleToResponse(doctorID, availabilities), nil
}

// ClearSchedule removes every window of the caller without looking at any payload.
func (u *doctorScheduleUsecase) ClearSchedule(ctx context.Context, userID uuid.UUID) (*dto.ClearScheduleResponse, error) {
	doctorID, err := u.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	removed, err := u.availabilityRepo.Clear(tx, doctorID)
	if err != nil {
		u.log.WithField("doctor_id", doctorID).Warnf("Failed to clear schedule: %+v", err)
		return nil, &InternalFault{Op: "clear schedule", Err: err}
	}

	// The audit service logs its own failures; they never fail the operation.
	_ = u.auditService.LogDelete(ctx, tx, &userID, entity.AuditActionScheduleClear, availabilityEntity, strconv.Itoa(doctorID), map[string]int64{"removed": removed})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, &InternalFault{Op: "clear schedule", Err: err}
	}

	return &dto.ClearScheduleResponse{DoctorID: doctorID, Removed: removed}, nil
}

// SaveSchedule validates the whole payload before resolving the doctor, then
// swaps the stored schedule for the day x range expansion of req.
func (u *doctorScheduleUsecase) SaveSchedule(ctx context.Context, userID uuid.UUID, req *dto.SaveScheduleRequest) (*dto.ScheduleResponse, error) {
	if req.Clear {
		cleared, err := u.ClearSchedule(ctx, userID)
		if err != nil {
			return nil, err
		}
		return converter.ScheduleToResponse(cleared.DoctorID, nil), nil
	}

	if err := u.validateSchedule(req); err != nil {
		return nil, err
	}

	doctorID, err := u.resolveDoctor(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := ExpandSchedule(req.Schedules)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	previous, err := u.availabilityRepo.ListByDoctor(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list availabilities: %+v", err)
		return nil, &InternalFault{Op: "replace schedule", Err: err}
	}

	if err := u.availabilityRepo.ReplaceAll(tx, doctorID, rows); err != nil {
		u.log.WithFields(logrus.Fields{
			"doctor_id": doctorID,
			"rows":      len(rows),
		}).Warnf("Failed to replace schedule: %+v", err)
		return nil, &InternalFault{Op: "replace schedule", Err: err}
	}

	oldValue := converter.AvailabilitiesToTuples(previous)
	newValue := converter.AvailabilitiesToTuples(rows)
	// The audit service logs its own failures; they never fail the operation.
	_ = u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionScheduleReplace, availabilityEntity, strconv.Itoa(doctorID), oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, &InternalFault{Op: "replace schedule", Err: err}
	}

	entity.SortAvailabilities(rows)
	return converter.ScheduleToResponse(doctorID, rows), nil
}

func (u *doctorScheduleUsecase) resolveDoctor(ctx context.Context, userID uuid.UUID) (int, error) {
	doctorID, err := u.doctorRepo.FindIDByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return 0, &InternalFault{Op: "find doctor profile", Err: err}
	}
	if doctorID == 0 {
		return 0, ErrDoctorProfileNotFound
	}
	return doctorID, nil
}

// validateSchedule collects every violation instead of stopping at the first.
func (u *doctorScheduleUsecase) validateSchedule(req *dto.SaveScheduleRequest) error {
	verr := newValidationError()
	if err := u.validator.Validate(req); err != nil {
		verr.merge(u.validator.FormatValidationErrors(err))
	}

	for i, block := range req.Schedules {
		for j, day := range block.SelectedDays {
			if day.Name == "" {
				continue
			}
			if _, ok := entity.ParseWeekday(day.Name); !ok {
				verr.add(fmt.Sprintf("schedules[%d].selectedDays[%d].name", i, j), "name must be a day of the week")
			}
		}

		for k, window := range block.TimeRanges {
			if !validator.IsClock(window.StartTime) || !validator.IsClock(window.EndTime) {
				continue
			}
			if window.EndTime <= window.StartTime {
				verr.add(fmt.Sprintf("schedules[%d].timeRanges[%d].end_time", i, k), "end_time must be after start_time")
			}
		}
	}

	return verr.orNil()
}

// ExpandSchedule emits one row per (day, range) pair of every block, with
// lowercase day names and second-precision times. Identical rows are emitted once.
func ExpandSchedule(blocks []dto.ScheduleBlock) []entity.DoctorAvailability {
	type key struct {
		day        entity.Weekday
		start, end string
	}
	seen := make(map[key]bool)

	var rows []entity.DoctorAvailability
	for _, block := range blocks {
		for _, selected := range block.SelectedDays {
			day, _ := entity.ParseWeekday(selected.Name)
			for _, window := range block.TimeRanges {
				k := key{day: day, start: window.StartTime + ":00", end: window.EndTime + ":00"}
				if seen[k] {
					continue
				}
				seen[k] = true
				rows = append(rows, entity.DoctorAvailability{
					DayOfWeek: k.day,
					StartTime: k.start,
					EndTime:   k.end,
				})
			}
		}
	}
	return rows
}
