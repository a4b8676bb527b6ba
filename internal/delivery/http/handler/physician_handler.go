package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PhysicianHandler struct {
	physicianUsecase usecase.PhysicianUsecase
	validator        *validator.CustomValidator
}

func NewPhysicianHandler(physicianUsecase usecase.PhysicianUsecase, validator *validator.CustomValidator) *PhysicianHandler {
	return &PhysicianHandler{
		physicianUsecase: physicianUsecase,
		validator:        validator,
	}
}

func (h *PhysicianHandler) CreatePhysician(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePhysicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	physician, err := h.physicianUsecase.CreatePhysician(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrLicenseAlreadyExists):
			response.Error(w, http.StatusConflict, "License number already exists", nil)
		case errors.Is(err, usecase.ErrDocumentAlreadyExists):
			response.Error(w, http.StatusConflict, "Document number already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create physician")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Physician created successfully", physician)
}

func (h *PhysicianHandler) GetPhysician(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	physicianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	physician, err := h.physicianUsecase.GetPhysician(r.Context(), physicianID)
	if err != nil {
		if errors.Is(err, usecase.ErrPhysicianNotFound) {
			response.NotFound(w, "Physician not found")
			return
		}
		response.InternalServerError(w, "Failed to get physician")
		return
	}

	response.Success(w, http.StatusOK, "Physician retrieved successfully", physician)
}

func (h *PhysicianHandler) GetAllPhysicians(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")

	physicians, err := h.physicianUsecase.GetAllPhysicians(r.Context(), specialty)
	if err != nil {
		response.InternalServerError(w, "Failed to get physicians")
		return
	}

	response.Success(w, http.StatusOK, "Physicians retrieved successfully", physicians)
}

func (h *PhysicianHandler) UpdatePhysician(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	physicianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid physician ID", nil)
		return
	}

	var req dto.UpdatePhysicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	physician, err := h.physicianUsecase.UpdatePhysician(r.Context(), physicianID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPhysicianNotFound) {
			response.NotFound(w, "Physician not found")
			return
		}
		response.InternalServerError(w, "Failed to update physician")
		return
	}

	response.Success(w, http.StatusOK, "Physician updated successfully", physician)
}
