package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"clinic-portal/internal/delivery/http/middleware"
	"clinic-portal/internal/usecase"
	"clinic-portal/pkg/response"

	"github.com/google/uuid"
)

// errorResponder maps usecase errors onto the response envelope. Internal
// fault details are only written when exposeDetail is set.
type errorResponder struct {
	exposeDetail bool
}

func (e errorResponder) respond(w http.ResponseWriter, err error, message string) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		response.ValidationError(w, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrDoctorProfileNotFound):
		response.NotFound(w, "Doctor profile not found")
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrSpecialtyNotFound):
		response.ValidationError(w, map[string]string{"doctor_specialty_id": "doctor_specialty_id does not exist"})
	case errors.Is(err, usecase.ErrHMONotFound):
		response.ValidationError(w, map[string]string{"hmo_ids": "hmo_ids contains an unknown hmo"})
	case errors.Is(err, usecase.ErrEmailExists):
		response.Conflict(w, "Email already exists")
	default:
		detail := ""
		if e.exposeDetail {
			detail = err.Error()
		}
		response.InternalServerError(w, message, detail)
	}
}

// decodeJSON treats an empty body as an empty object.
func decodeJSON(r *http.Request, dest interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User not found in context")
	}
	return userID, ok
}
