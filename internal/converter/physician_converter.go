package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// PhysicianToResponse converts a Physician entity to its response DTO
func PhysicianToResponse(physician *entity.Physician) *dto.PhysicianResponse {
	if physician == nil {
		return nil
	}

	return &dto.PhysicianResponse{
		ID:             physician.ID,
		FullName:       physician.FullName,
		DocumentNumber: physician.DocumentNumber,
		LicenseNumber:  physician.LicenseNumber,
		Specialty:      physician.Specialty,
		PhoneNumber:    physician.PhoneNumber,
		IsActive:       physician.IsActive,
		CreatedAt:      physician.CreatedAt,
		UpdatedAt:      physician.UpdatedAt,
	}
}

// PhysiciansToResponses converts a slice of Physician entities
func PhysiciansToResponses(physicians []entity.Physician) []dto.PhysicianResponse {
	responses := make([]dto.PhysicianResponse, len(physicians))
	for i := range physicians {
		responses[i] = *PhysicianToResponse(&physicians[i])
	}
	return responses
}
