package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterWindowRequest struct {
	Weekday   int    `json:"weekday" validate:"required,gte=1,lte=7"`
	StartTime string `json:"start_time" validate:"required"` // HH:MM
	EndTime   string `json:"end_time" validate:"required"`   // HH:MM
}

type UpdateWindowRequest struct {
	Weekday   int    `json:"weekday" validate:"omitempty,gte=1,lte=7"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

type WindowResponse struct {
	ID          int       `json:"id"`
	PhysicianID uuid.UUID `json:"physician_id"`
	Weekday     int       `json:"weekday"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type WindowListResponse struct {
	Windows []WindowResponse `json:"windows"`
	Total   int              `json:"total"`
}
