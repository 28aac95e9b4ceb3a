package handler

import (
	"net/http"
	"strconv"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorScheduleHandler struct {
	errorResponder
	scheduleUsecase usecase.DoctorScheduleUsecase
}

func NewDoctorScheduleHandler(scheduleUsecase usecase.DoctorScheduleUsecase, exposeErrors bool) *DoctorScheduleHandler {
	return &DoctorScheduleHandler{
		errorResponder:  errorResponder{exposeDetail: exposeErrors},
		scheduleUsecase: scheduleUsecase,
	}
}

func (h *DoctorScheduleHandler) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	schedule, err := h.scheduleUsecase.GetMySchedule(r.Context(), userID)
	if err != nil {
		h.respond(w, err, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// SaveSchedule replaces the caller's weekly schedule, or clears it when the
// body sets clear.
func (h *DoctorScheduleHandler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req dto.SaveScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	schedule, err := h.scheduleUsecase.SaveSchedule(r.Context(), userID, &req)
	if err != nil {
		h.respond(w, err, "Failed to save schedule")
		return
	}

	message := "Schedule saved successfully"
	if req.Clear {
		message = "Schedule cleared successfully"
	}
	response.Success(w, http.StatusOK, message, schedule)
}

func (h *DoctorScheduleHandler) GetDoctorAvailabilities(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || doctorID <= 0 {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	schedule, err := h.scheduleUsecase.GetDoctorAvailabilities(r.Context(), doctorID)
	if err != nil {
		h.respond(w, err, "Failed to get availabilities")
		return
	}

	response.Success(w, http.StatusOK, "Availabilities retrieved successfully", schedule)
}
