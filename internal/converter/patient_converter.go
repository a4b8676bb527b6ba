package converter

import (
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:                patient.ID,
		FullName:          patient.FullName,
		DocumentNumber:    patient.DocumentNumber,
		DateOfBirth:       patient.DateOfBirth.Format("2006-01-02"),
		Gender:            patient.Gender,
		PhoneNumber:       patient.PhoneNumber,
		Address:           patient.Address,
		InsuranceProvider: patient.InsuranceProvider,
		CreatedAt:         patient.CreatedAt,
		UpdatedAt:         patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
