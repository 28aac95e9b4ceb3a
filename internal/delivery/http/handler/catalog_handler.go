package handler

import (
	"net/http"

	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"
)

type CatalogHandler struct {
	errorResponder
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, exposeErrors bool) *CatalogHandler {
	return &CatalogHandler{
		errorResponder: errorResponder{exposeDetail: exposeErrors},
		catalogUsecase: catalogUsecase,
	}
}

func (h *CatalogHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.catalogUsecase.ListSpecialties(r.Context())
	if err != nil {
		h.respond(w, err, "Failed to get specialties")
		return
	}
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

func (h *CatalogHandler) ListHMOs(w http.ResponseWriter, r *http.Request) {
	hmos, err := h.catalogUsecase.ListHMOs(r.Context())
	if err != nil {
		h.respond(w, err, "Failed to get HMOs")
		return
	}
	response.Success(w, http.StatusOK, "HMOs retrieved successfully", hmos)
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		h.respond(w, err, "Failed to get services")
		return
	}
	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}
