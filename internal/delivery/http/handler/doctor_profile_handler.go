package handler

import (
	"net/http"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"
)

type DoctorProfileHandler struct {
	errorResponder
	profileUsecase usecase.DoctorProfileUsecase
}

func NewDoctorProfileHandler(profileUsecase usecase.DoctorProfileUsecase, exposeErrors bool) *DoctorProfileHandler {
	return &DoctorProfileHandler{
		errorResponder: errorResponder{exposeDetail: exposeErrors},
		profileUsecase: profileUsecase,
	}
}

func (h *DoctorProfileHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	profile, err := h.profileUsecase.GetMyProfile(r.Context(), userID)
	if err != nil {
		h.respond(w, err, "Failed to get profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

func (h *DoctorProfileHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.profileUsecase.UpdateMyProfile(r.Context(), userID, &req)
	if err != nil {
		h.respond(w, err, "Failed to update profile")
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", profile)
}
