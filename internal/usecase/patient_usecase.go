package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDocumentAlreadyExists = errors.New("document number already exists")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient := &entity.Patient{
		FullName:          req.FullName,
		DocumentNumber:    req.DocumentNumber,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		InsuranceProvider: req.InsuranceProvider,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		if isDuplicateKeyError(err, "document_number") {
			return nil, ErrDocumentAlreadyExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.FullName != "" {
		patient.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		patient.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		patient.Address = req.Address
	}
	if req.InsuranceProvider != "" {
		patient.InsuranceProvider = req.InsuranceProvider
	}

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient %s: %+v", id, err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
