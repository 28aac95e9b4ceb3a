package usecase

import (
	"context"
	"strconv"
	"strings"

	"clinic-portal/internal/converter"
	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/domain/entity"
	"clinic-portal/internal/domain/repository"
	"clinic-portal/internal/infrastructure/storage"
	"clinic-portal/internal/service"
	"clinic-portal/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const doctorEntity = "doctors"

type DoctorProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error)
	UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	validator    *validator.CustomValidator
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	catalogRepo  repository.CatalogRepository
	auditService service.AuditService
	urls         storage.URLResolver
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validator *validator.CustomValidator,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	catalogRepo repository.CatalogRepository,
	auditService service.AuditService,
	urls storage.URLResolver,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		validator:    validator,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		catalogRepo:  catalogRepo,
		auditService: auditService,
		urls:         urls,
	}
}

func (u *doctorProfileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	doctor, err := u.findDoctor(u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}
	return converter.DoctorToProfileResponse(doctor, u.urls.PublicURL), nil
}

func (u *doctorProfileUsecase) UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, fromValidator(u.validator, err)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.findDoctor(tx, userID)
	if err != nil {
		return nil, err
	}
	if doctor.Profile == nil || doctor.Profile.User == nil {
		u.log.WithField("doctor_id", doctor.ID).Warn("Doctor has no profile or user row")
		return nil, ErrDoctorProfileNotFound
	}

	oldValue := converter.DoctorToProfileResponse(doctor, u.urls.PublicURL)

	var specialty *entity.Specialty
	if req.SpecialtyID != nil {
		specialty, err = u.catalogRepo.FindSpecialtyByID(tx, *req.SpecialtyID)
		if err != nil {
			u.log.Warnf("Failed to find specialty: %+v", err)
			return nil, &InternalFault{Op: "update doctor profile", Err: err}
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}
	}

	var hmos []entity.HMO
	if req.HMOIDs != nil {
		ids := distinctIDs(req.HMOIDs)
		hmos, err = u.catalogRepo.FindHMOsByIDs(tx, ids)
		if err != nil {
			u.log.Warnf("Failed to find hmos: %+v", err)
			return nil, &InternalFault{Op: "update doctor profile", Err: err}
		}
		if len(hmos) != len(ids) {
			return nil, ErrHMONotFound
		}
	}

	email := strings.TrimSpace(req.Email)
	user := doctor.Profile.User
	user.Email = email
	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailExists
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, &InternalFault{Op: "update doctor profile", Err: err}
	}

	profile := doctor.Profile
	profile.FirstName = entity.CapitalizeName(req.FirstName)
	profile.MiddleName = entity.CapitalizeName(req.MiddleName)
	profile.LastName = entity.CapitalizeName(req.LastName)
	profile.ContactEmail = email
	if err := u.userRepo.UpdateProfile(tx, profile); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, &InternalFault{Op: "update doctor profile", Err: err}
	}

	doctor.SpecialtyID = req.SpecialtyID
	doctor.Specialty = specialty
	doctor.LicenseNumber = req.LicenseNumber
	doctor.RoomNumber = req.RoomNumber
	doctor.ClinicPhoneNumber = req.ClinicPhoneNumber
	doctor.DoctorNote = req.DoctorNote
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isForeignKeyError(err, "specialty") {
			return nil, ErrSpecialtyNotFound
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, &InternalFault{Op: "update doctor profile", Err: err}
	}

	if req.HMOIDs != nil {
		if err := u.doctorRepo.ReplaceHMOs(tx, doctor, hmos); err != nil {
			if isForeignKeyError(err, "hmo") {
				return nil, ErrHMONotFound
			}
			u.log.Warnf("Failed to replace doctor hmos: %+v", err)
			return nil, &InternalFault{Op: "update doctor profile", Err: err}
		}
		doctor.HMOs = hmos
	}

	newValue := converter.DoctorToProfileResponse(doctor, u.urls.PublicURL)
	// The audit service logs its own failures; they never fail the operation.
	_ = u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionProfileUpdate, doctorEntity, strconv.Itoa(doctor.ID), oldValue, newValue)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, &InternalFault{Op: "update doctor profile", Err: err}
	}

	return newValue, nil
}

func (u *doctorProfileUsecase) findDoctor(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, &InternalFault{Op: "find doctor profile", Err: err}
	}
	if doctor == nil {
		return nil, ErrDoctorProfileNotFound
	}
	return doctor, nil
}

func distinctIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
