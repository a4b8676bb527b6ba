package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Location string `json:"location" validate:"max=100"`
}

type UpdateRoomRequest struct {
	Name     string `json:"name" validate:"omitempty,max=50"`
	Location string `json:"location" validate:"max=100"`
}

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}
