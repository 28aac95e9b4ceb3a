package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProfileUsecase struct {
	gotReq *dto.UpdateDoctorProfileRequest
	err    error
}

func (s *stubProfileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DoctorProfileResponse{ID: 1, UserID: userID, HMOs: []dto.HMOResponse{}}, nil
}

func (s *stubProfileUsecase) UpdateMyProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorProfileResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DoctorProfileResponse{ID: 1, UserID: userID, Email: req.Email, HMOs: []dto.HMOResponse{}}, nil
}

func TestDoctorProfileHandler_Update(t *testing.T) {
	uc := &stubProfileUsecase{}
	h := NewDoctorProfileHandler(uc, false)

	body := `{"email":"ada@clinic.test","first_name":"Ada","middle_name":"K","last_name":"Lovelace","hmo_ids":[]}`
	rec := httptest.NewRecorder()
	h.UpdateMyProfile(rec, asDoctor(httptest.NewRequest(http.MethodPut, "/api/v1/doctor/profile", strings.NewReader(body)), uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, uc.gotReq.HMOIDs)
	assert.Empty(t, uc.gotReq.HMOIDs)
	assert.Equal(t, "Profile updated successfully", decodeEnvelope(t, rec).Message)
}

func TestDoctorProfileHandler_OmittedHMOsStayNil(t *testing.T) {
	uc := &stubProfileUsecase{}
	h := NewDoctorProfileHandler(uc, false)

	rec := httptest.NewRecorder()
	h.UpdateMyProfile(rec, asDoctor(httptest.NewRequest(http.MethodPut, "/api/v1/doctor/profile", strings.NewReader(`{"email":"a@b.c"}`)), uuid.New()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.gotReq.HMOIDs)
}

func TestDoctorProfileHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantError  string
	}{
		{err: usecase.ErrEmailExists, wantStatus: http.StatusConflict},
		{err: usecase.ErrSpecialtyNotFound, wantStatus: http.StatusBadRequest, wantError: `{"doctor_specialty_id":"doctor_specialty_id does not exist"}`},
		{err: usecase.ErrHMONotFound, wantStatus: http.StatusBadRequest, wantError: `{"hmo_ids":"hmo_ids contains an unknown hmo"}`},
		{err: usecase.ErrDoctorProfileNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewDoctorProfileHandler(&stubProfileUsecase{err: tt.err}, false)

			rec := httptest.NewRecorder()
			h.UpdateMyProfile(rec, asDoctor(httptest.NewRequest(http.MethodPut, "/api/v1/doctor/profile", strings.NewReader(`{}`)), uuid.New()))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, tt.wantError, string(decodeEnvelope(t, rec).Error))
			}
		})
	}
}

func TestDoctorProfileHandler_Get(t *testing.T) {
	h := NewDoctorProfileHandler(&stubProfileUsecase{}, false)
	userID := uuid.New()

	rec := httptest.NewRecorder()
	h.GetMyProfile(rec, asDoctor(httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), userID.String())
}
