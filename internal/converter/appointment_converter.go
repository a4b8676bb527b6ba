package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientID:   appointment.PatientID,
		PhysicianID: appointment.PhysicianID,
		RoomID:      appointment.RoomID,
		ScheduledAt: appointment.ScheduledAt,
		EndsAt:      appointment.EndsAt(),
		Reason:      appointment.Reason,
		Observation: appointment.Observation,
		Status:      string(appointment.Status),
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
