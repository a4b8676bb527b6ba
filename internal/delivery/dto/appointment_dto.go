package dto

import (
	"time"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	PatientID   uuid.UUID `json:"patient_id" validate:"required"`
	PhysicianID uuid.UUID `json:"physician_id" validate:"required"`
	RoomID      uuid.UUID `json:"room_id" validate:"required"`
	ScheduledAt string    `json:"scheduled_at" validate:"required"` // RFC 3339
	Reason      string    `json:"reason" validate:"required,max=255"`
}

type TransitionRequest struct {
	Observation string `json:"observation" validate:"max=500"`
}

type AppointmentResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	PhysicianID uuid.UUID `json:"physician_id"`
	RoomID      uuid.UUID `json:"room_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	EndsAt      time.Time `json:"ends_at"`
	Reason      string    `json:"reason"`
	Observation string    `json:"observation,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
