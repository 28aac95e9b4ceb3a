package usecase

import (
	"context"
	"io"
	"sort"
	"sync"

	"clinic-portal/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeDoctorRepo struct {
	mu        sync.Mutex
	doctors   map[int]*entity.Doctor
	err       error
	searchErr error
	searchFn  func(filter *entity.DoctorSearchFilter) []entity.Doctor
	lastQuery *entity.DoctorSearchFilter
	updated   []*entity.Doctor
	hmoCalls  [][]entity.HMO
	updateErr error
}

func newFakeDoctorRepo(doctors ...*entity.Doctor) *fakeDoctorRepo {
	r := &fakeDoctorRepo{doctors: make(map[int]*entity.Doctor)}
	for _, d := range doctors {
		r.doctors[d.ID] = d
	}
	return r
}

func (r *fakeDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, d := range r.doctors {
		if d.UserID == userID {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id int) (*entity.Doctor, error) {
	if r.err != nil {
		return nil, r.err
	}
	if d, ok := r.doctors[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindIDByUserID(db *gorm.DB, userID uuid.UUID) (int, error) {
	d, err := r.FindByUserID(db, userID)
	if err != nil || d == nil {
		return 0, err
	}
	return d.ID, nil
}

func (r *fakeDoctorRepo) ExistsByID(db *gorm.DB, id int) (bool, error) {
	d, err := r.FindByID(db, id)
	return d != nil, err
}

func (r *fakeDoctorRepo) Search(db *gorm.DB, filter *entity.DoctorSearchFilter) ([]entity.Doctor, error) {
	r.mu.Lock()
	r.lastQuery = filter
	r.mu.Unlock()
	if r.searchErr != nil {
		return nil, r.searchErr
	}
	if r.searchFn != nil {
		return r.searchFn(filter), nil
	}
	ids := make([]int, 0, len(r.doctors))
	for id := range r.doctors {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	result := make([]entity.Doctor, 0, len(ids))
	for _, id := range ids {
		result = append(result, *r.doctors[id])
	}
	return result, nil
}

func (r *fakeDoctorRepo) Update(db *gorm.DB, doctor *entity.Doctor) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, doctor)
	return nil
}

func (r *fakeDoctorRepo) ReplaceHMOs(db *gorm.DB, doctor *entity.Doctor, hmos []entity.HMO) error {
	r.hmoCalls = append(r.hmoCalls, hmos)
	return nil
}

type fakeAvailabilityRepo struct {
	mu         sync.Mutex
	rows       map[int][]entity.DoctorAvailability
	nextID     int
	replaceErr error
	listErr    error
	replaced   int
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{rows: make(map[int][]entity.DoctorAvailability)}
}

func (r *fakeAvailabilityRepo) ListByDoctor(db *gorm.DB, doctorID int) ([]entity.DoctorAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	rows := append([]entity.DoctorAvailability(nil), r.rows[doctorID]...)
	entity.SortAvailabilities(rows)
	return rows, nil
}

func (r *fakeAvailabilityRepo) ReplaceAll(db *gorm.DB, doctorID int, entries []entity.DoctorAvailability) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaceErr != nil {
		return r.replaceErr
	}
	r.replaced++
	stored := make([]entity.DoctorAvailability, len(entries))
	for i := range entries {
		r.nextID++
		entries[i].ID = r.nextID
		entries[i].DoctorID = doctorID
		stored[i] = entries[i]
	}
	r.rows[doctorID] = stored
	return nil
}

func (r *fakeAvailabilityRepo) Clear(db *gorm.DB, doctorID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaceErr != nil {
		return 0, r.replaceErr
	}
	removed := int64(len(r.rows[doctorID]))
	delete(r.rows, doctorID)
	return removed, nil
}

type auditCall struct {
	action   string
	entityID string
	oldValue interface{}
	newValue interface{}
}

type fakeAuditService struct {
	calls []auditCall
	err   error
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.calls = append(s.calls, auditCall{action: action, entityID: entityID, oldValue: oldValue, newValue: newValue})
	return s.err
}

func (s *fakeAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	s.calls = append(s.calls, auditCall{action: action, entityID: entityID, oldValue: oldValue})
	return s.err
}

type fakeCatalogRepo struct {
	specialties []entity.Specialty
	hmos        []entity.HMO
	categories  []entity.ServiceCategory
	err         error
	calls       int
}

func (r *fakeCatalogRepo) FindAllSpecialties(db *gorm.DB) ([]entity.Specialty, error) {
	r.calls++
	return r.specialties, r.err
}

func (r *fakeCatalogRepo) FindSpecialtyByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.specialties {
		if r.specialties[i].ID == id {
			return &r.specialties[i], nil
		}
	}
	return nil, nil
}

func (r *fakeCatalogRepo) FindAllHMOs(db *gorm.DB) ([]entity.HMO, error) {
	r.calls++
	return r.hmos, r.err
}

func (r *fakeCatalogRepo) FindHMOsByIDs(db *gorm.DB, ids []int) ([]entity.HMO, error) {
	if r.err != nil {
		return nil, r.err
	}
	found := []entity.HMO{}
	for _, h := range r.hmos {
		for _, id := range ids {
			if h.ID == id {
				found = append(found, h)
			}
		}
	}
	return found, nil
}

func (r *fakeCatalogRepo) FindAllServiceCategories(db *gorm.DB) ([]entity.ServiceCategory, error) {
	r.calls++
	return r.categories, r.err
}

type fakeUserRepo struct {
	users    []*entity.User
	profiles []*entity.Profile
	err      error
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) UpdateProfile(db *gorm.DB, profile *entity.Profile) error {
	if r.err != nil {
		return r.err
	}
	r.profiles = append(r.profiles, profile)
	return nil
}
