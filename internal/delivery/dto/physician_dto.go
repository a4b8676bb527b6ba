package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePhysicianRequest struct {
	FullName       string `json:"full_name" validate:"required,max=255"`
	DocumentNumber string `json:"document_number" validate:"required,max=20"`
	LicenseNumber  string `json:"license_number" validate:"required,max=50"`
	Specialty      string `json:"specialty" validate:"required,max=100"`
	PhoneNumber    string `json:"phone_number" validate:"max=20"`
}

type UpdatePhysicianRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,max=255"`
	Specialty   string `json:"specialty" validate:"omitempty,max=100"`
	PhoneNumber string `json:"phone_number" validate:"max=20"`
	IsActive    *bool  `json:"is_active"`
}

type PhysicianResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	DocumentNumber string    `json:"document_number"`
	LicenseNumber  string    `json:"license_number"`
	Specialty      string    `json:"specialty"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
	IsActive       *bool     `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type PhysicianListResponse struct {
	Physicians []PhysicianResponse `json:"physicians"`
	Total      int                 `json:"total"`
}
