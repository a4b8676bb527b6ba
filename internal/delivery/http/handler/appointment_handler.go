package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/scheduling"
	"hospital-appointment-api/internal/service"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Confirm(r.Context(), id)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment confirmed", appointment)
}

func (h *AppointmentHandler) Start(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Start(r.Context(), id)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment started", appointment)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	req, ok := h.transitionBody(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), id, req.Observation)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled", appointment)
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	req, ok := h.transitionBody(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Complete(r.Context(), id, req.Observation)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment completed", appointment)
}

func (h *AppointmentHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentID(w, r)
	if !ok {
		return
	}

	req, ok := h.transitionBody(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.MarkNoShow(r.Context(), id, req.Observation)
	if err != nil {
		writeTransitionError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment marked as no-show", appointment)
}

func (h *AppointmentHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	dateParam := r.URL.Query().Get("date")

	if dateParam == "" {
		appointments, err := h.appointmentUsecase.ListUpcoming(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to list appointments")
			return
		}
		response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
		return
	}

	date, err := time.Parse("2006-01-02", dateParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListByDate(r.Context(), date)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	appointments, err := h.appointmentUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) ListByPhysician(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	physicianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	dateParam := r.URL.Query().Get("date")
	date := time.Now()
	if dateParam != "" {
		date, err = time.Parse("2006-01-02", dateParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
	}

	appointments, err := h.appointmentUsecase.ListByPhysicianAndDate(r.Context(), physicianID, date)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) transitionBody(w http.ResponseWriter, r *http.Request) (*dto.TransitionRequest, bool) {
	var req dto.TransitionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return nil, false
		}
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func appointmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// writeBookingError maps booking failures to HTTP statuses. Scheduling
// errors carry their structured detail through the error payload so the
// caller can render an actionable message.
func writeBookingError(w http.ResponseWriter, err error) {
	var (
		pastErr    *scheduling.PastDateError
		closedErr  *scheduling.ClosedDayError
		noAvailErr *scheduling.NoAvailabilityError
		doubleErr  *scheduling.DoubleBookingError
	)

	switch {
	case errors.Is(err, usecase.ErrInvalidDateTime):
		response.Error(w, http.StatusBadRequest, "Invalid date-time format, use RFC 3339", nil)
	case errors.Is(err, usecase.ErrPatientNotFound):
		response.NotFound(w, "Patient not found")
	case errors.Is(err, usecase.ErrPhysicianNotFound):
		response.NotFound(w, "Physician not found")
	case errors.Is(err, usecase.ErrRoomNotFound):
		response.NotFound(w, "Room not found")
	case errors.Is(err, usecase.ErrPhysicianInactive):
		response.Error(w, http.StatusBadRequest, "Physician is not active", nil)
	case errors.As(err, &pastErr):
		response.Error(w, http.StatusBadRequest, "Cannot book an appointment in the past", pastErr.Error())
	case errors.As(err, &closedErr):
		response.Error(w, http.StatusBadRequest, "Clinic is closed on Sundays", closedErr.Error())
	case errors.As(err, &noAvailErr):
		response.Error(w, http.StatusConflict, "Physician has no availability for the requested time", noAvailErr.Error())
	case errors.As(err, &doubleErr):
		response.Error(w, http.StatusConflict, "Physician already has an appointment in that interval", doubleErr.Error())
	case errors.Is(err, service.ErrPhysicianBusy):
		response.Error(w, http.StatusConflict, "Physician calendar is busy, please retry", nil)
	default:
		response.InternalServerError(w, "Failed to book appointment")
	}
}

func writeTransitionError(w http.ResponseWriter, err error) {
	var illegalErr *entity.IllegalTransitionError

	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		response.NotFound(w, "Appointment not found")
	case errors.As(err, &illegalErr):
		response.Error(w, http.StatusConflict, "Transition not allowed from current status", illegalErr.Error())
	default:
		response.InternalServerError(w, "Failed to update appointment")
	}
}
