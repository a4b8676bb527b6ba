package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// WindowToResponse converts an AvailabilityWindow entity to its response DTO
func WindowToResponse(window *entity.AvailabilityWindow) *dto.WindowResponse {
	if window == nil {
		return nil
	}

	return &dto.WindowResponse{
		ID:          window.ID,
		PhysicianID: window.PhysicianID,
		Weekday:     window.Weekday,
		StartTime:   window.StartTime,
		EndTime:     window.EndTime,
		CreatedAt:   window.CreatedAt,
		UpdatedAt:   window.UpdatedAt,
	}
}

// WindowsToResponses converts a slice of AvailabilityWindow entities
func WindowsToResponses(windows []entity.AvailabilityWindow) []dto.WindowResponse {
	responses := make([]dto.WindowResponse, len(windows))
	for i := range windows {
		responses[i] = *WindowToResponse(&windows[i])
	}
	return responses
}
