package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	FullName          string `json:"full_name" validate:"required,max=255"`
	DocumentNumber    string `json:"document_number" validate:"required,max=20"`
	DateOfBirth       string `json:"date_of_birth" validate:"required"` // YYYY-MM-DD
	Gender            string `json:"gender" validate:"required,oneof=M F"`
	PhoneNumber       string `json:"phone_number" validate:"max=20"`
	Address           string `json:"address"`
	InsuranceProvider string `json:"insurance_provider" validate:"max=100"`
}

type UpdatePatientRequest struct {
	FullName          string `json:"full_name" validate:"omitempty,max=255"`
	PhoneNumber       string `json:"phone_number" validate:"max=20"`
	Address           string `json:"address"`
	InsuranceProvider string `json:"insurance_provider" validate:"max=100"`
}

type PatientResponse struct {
	ID                uuid.UUID `json:"id"`
	FullName          string    `json:"full_name"`
	DocumentNumber    string    `json:"document_number"`
	DateOfBirth       string    `json:"date_of_birth"`
	Gender            string    `json:"gender"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	Address           string    `json:"address,omitempty"`
	InsuranceProvider string    `json:"insurance_provider,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
