package handler

import (
	"net/http"

	"clinic-portal/internal/delivery/dto"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"
)

type DoctorSearchHandler struct {
	errorResponder
	searchUsecase usecase.DoctorSearchUsecase
}

func NewDoctorSearchHandler(searchUsecase usecase.DoctorSearchUsecase, exposeErrors bool) *DoctorSearchHandler {
	return &DoctorSearchHandler{
		errorResponder: errorResponder{exposeDetail: exposeErrors},
		searchUsecase:  searchUsecase,
	}
}

// Search renders result cards, or the raw rows when the body sets debug.
func (h *DoctorSearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchDoctorsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	mode := dto.SearchModeFragment
	if req.Debug {
		mode = dto.SearchModeRaw
	}
	h.search(w, r, &req, mode)
}

func (h *DoctorSearchHandler) SearchJSON(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchDoctorsRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	h.search(w, r, &req, dto.SearchModeJSON)
}

func (h *DoctorSearchHandler) search(w http.ResponseWriter, r *http.Request, req *dto.SearchDoctorsRequest, mode dto.SearchMode) {
	payload, err := h.searchUsecase.SearchDoctors(r.Context(), req, mode)
	if err != nil {
		h.respond(w, err, "Failed to search doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", payload)
}
