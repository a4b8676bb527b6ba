package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// RoomToResponse converts a Room entity to its response DTO
func RoomToResponse(room *entity.Room) *dto.RoomResponse {
	if room == nil {
		return nil
	}

	return &dto.RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Location:  room.Location,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// RoomsToResponses converts a slice of Room entities
func RoomsToResponses(rooms []entity.Room) []dto.RoomResponse {
	responses := make([]dto.RoomResponse, len(rooms))
	for i := range rooms {
		responses[i] = *RoomToResponse(&rooms[i])
	}
	return responses
}
