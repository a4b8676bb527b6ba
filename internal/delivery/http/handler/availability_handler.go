package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *AvailabilityHandler) RegisterWindow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	physicianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	var req dto.RegisterWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.RegisterWindow(r.Context(), physicianID, &req)
	if err != nil {
		writeWindowError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Availability window registered successfully", window)
}

func (h *AvailabilityHandler) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	windowID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid window ID", nil)
		return
	}

	var req dto.UpdateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	window, err := h.availabilityUsecase.UpdateWindow(r.Context(), windowID, &req)
	if err != nil {
		writeWindowError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability window updated successfully", window)
}

func (h *AvailabilityHandler) ListByPhysician(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	physicianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	windows, err := h.availabilityUsecase.ListByPhysician(r.Context(), physicianID)
	if err != nil {
		response.InternalServerError(w, "Failed to list availability windows")
		return
	}

	response.Success(w, http.StatusOK, "Availability windows retrieved successfully", windows)
}

func writeWindowError(w http.ResponseWriter, err error) {
	var (
		rangeErr   *entity.InvalidRangeError
		overlapErr *entity.OverlapError
	)

	switch {
	case errors.Is(err, usecase.ErrPhysicianNotFound):
		response.NotFound(w, "Physician not found")
	case errors.Is(err, usecase.ErrWindowNotFound):
		response.NotFound(w, "Availability window not found")
	case errors.As(err, &rangeErr):
		response.Error(w, http.StatusBadRequest, "Invalid availability window range", rangeErr.Error())
	case errors.As(err, &overlapErr):
		response.Error(w, http.StatusConflict, "Availability window overlaps an existing window", overlapErr.Error())
	default:
		response.InternalServerError(w, "Failed to save availability window")
	}
}
