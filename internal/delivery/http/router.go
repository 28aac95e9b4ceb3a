package http

import (
	"net/http"

	"clinic-portal/internal/delivery/http/handler"
	"clinic-portal/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router                *mux.Router
	log                   *logrus.Logger
	doctorSearchHandler   *handler.DoctorSearchHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	doctorProfileHandler  *handler.DoctorProfileHandler
	catalogHandler        *handler.CatalogHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	log *logrus.Logger,
	doctorSearchHandler *handler.DoctorSearchHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	doctorProfileHandler *handler.DoctorProfileHandler,
	catalogHandler *handler.CatalogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		log:                   log,
		doctorSearchHandler:   doctorSearchHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		doctorProfileHandler:  doctorProfileHandler,
		catalogHandler:        catalogHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.Use(middleware.Recoverer(r.log))
	r.router.Use(middleware.RequestLogger(r.log))
	r.router.Use(r.corsMiddleware.Handle)

	api := r.router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public doctor finder and reference data
	api.HandleFunc("/doctors/search", r.doctorSearchHandler.Search).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/doctors/search-json", r.doctorSearchHandler.SearchJSON).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/doctors/specialties", r.catalogHandler.ListSpecialties).Methods(http.MethodGet)
	api.HandleFunc("/doctors/hmos", r.catalogHandler.ListHMOs).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/availabilities", r.doctorScheduleHandler.GetDoctorAvailabilities).Methods(http.MethodGet)
	api.HandleFunc("/services", r.catalogHandler.ListServices).Methods(http.MethodGet)

	// Doctor self-service (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/schedule", r.doctorScheduleHandler.GetMySchedule).Methods(http.MethodGet)
	doctor.HandleFunc("/schedule", r.doctorScheduleHandler.SaveSchedule).Methods(http.MethodPost)
	doctor.HandleFunc("/profile", r.doctorProfileHandler.GetMyProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorProfileHandler.UpdateMyProfile).Methods(http.MethodPut)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
