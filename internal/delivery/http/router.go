package http

import (
	"net/http"

	"hospital-appointment-api/internal/delivery/http/handler"
	"hospital-appointment-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	appointmentHandler  *handler.AppointmentHandler
	availabilityHandler *handler.AvailabilityHandler
	patientHandler      *handler.PatientHandler
	physicianHandler    *handler.PhysicianHandler
	roomHandler         *handler.RoomHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	availabilityHandler *handler.AvailabilityHandler,
	patientHandler *handler.PatientHandler,
	physicianHandler *handler.PhysicianHandler,
	roomHandler *handler.RoomHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		appointmentHandler:  appointmentHandler,
		availabilityHandler: availabilityHandler,
		patientHandler:      patientHandler,
		physicianHandler:    physicianHandler,
		roomHandler:         roomHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointment book (staff and physicians)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Use(middleware.RequireClinical)
	appointments.HandleFunc("", r.appointmentHandler.Book).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.ListByDate).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/start", r.appointmentHandler.Start).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	appointments.HandleFunc("/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPost)

	// Directory (staff)
	staff := api.PathPrefix("").Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)

	staff.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	staff.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	staff.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	staff.HandleFunc("/patients/{id}/appointments", r.appointmentHandler.ListByPatient).Methods(http.MethodGet)

	staff.HandleFunc("/physicians", r.physicianHandler.GetAllPhysicians).Methods(http.MethodGet)
	staff.HandleFunc("/physicians/{id}", r.physicianHandler.GetPhysician).Methods(http.MethodGet)
	staff.HandleFunc("/physicians/{id}/appointments", r.appointmentHandler.ListByPhysician).Methods(http.MethodGet)
	staff.HandleFunc("/physicians/{id}/availability-windows", r.availabilityHandler.ListByPhysician).Methods(http.MethodGet)

	staff.HandleFunc("/rooms", r.roomHandler.GetAllRooms).Methods(http.MethodGet)
	staff.HandleFunc("/rooms/{id}", r.roomHandler.GetRoom).Methods(http.MethodGet)

	// Administration (admin only)
	admin := api.PathPrefix("").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/physicians", r.physicianHandler.CreatePhysician).Methods(http.MethodPost)
	admin.HandleFunc("/physicians/{id}", r.physicianHandler.UpdatePhysician).Methods(http.MethodPut)
	admin.HandleFunc("/physicians/{id}/availability-windows", r.availabilityHandler.RegisterWindow).Methods(http.MethodPost)
	admin.HandleFunc("/availability-windows/{id}", r.availabilityHandler.UpdateWindow).Methods(http.MethodPut)

	admin.HandleFunc("/rooms", r.roomHandler.CreateRoom).Methods(http.MethodPost)
	admin.HandleFunc("/rooms/{id}", r.roomHandler.UpdateRoom).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
