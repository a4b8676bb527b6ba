package usecase

import (
	"context"
	"errors"

	"hospital-appointment-api/internal/converter"
	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/domain/entity"
	"hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrLicenseAlreadyExists = errors.New("license number already exists")

type PhysicianUsecase interface {
	CreatePhysician(ctx context.Context, req *dto.CreatePhysicianRequest) (*dto.PhysicianResponse, error)
	GetPhysician(ctx context.Context, id uuid.UUID) (*dto.PhysicianResponse, error)
	GetAllPhysicians(ctx context.Context, specialty string) (*dto.PhysicianListResponse, error)
	UpdatePhysician(ctx context.Context, id uuid.UUID, req *dto.UpdatePhysicianRequest) (*dto.PhysicianResponse, error)
}

type physicianUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	physicianRepo repository.PhysicianRepository
}

func NewPhysicianUsecase(db *gorm.DB, log *logrus.Logger, physicianRepo repository.PhysicianRepository) PhysicianUsecase {
	return &physicianUsecase{
		db:            db,
		log:           log,
		physicianRepo: physicianRepo,
	}
}

func (u *physicianUsecase) CreatePhysician(ctx context.Context, req *dto.CreatePhysicianRequest) (*dto.PhysicianResponse, error) {
	active := true
	physician := &entity.Physician{
		FullName:       req.FullName,
		DocumentNumber: req.DocumentNumber,
		LicenseNumber:  req.LicenseNumber,
		Specialty:      req.Specialty,
		PhoneNumber:    req.PhoneNumber,
		IsActive:       &active,
	}

	if err := u.physicianRepo.Create(u.db.WithContext(ctx), physician); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		if isDuplicateKeyError(err, "document_number") {
			return nil, ErrDocumentAlreadyExists
		}
		u.log.Warnf("Failed to create physician: %+v", err)
		return nil, err
	}

	return converter.PhysicianToResponse(physician), nil
}

func (u *physicianUsecase) GetPhysician(ctx context.Context, id uuid.UUID) (*dto.PhysicianResponse, error) {
	physician, err := u.physicianRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", id, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}
	return converter.PhysicianToResponse(physician), nil
}

func (u *physicianUsecase) GetAllPhysicians(ctx context.Context, specialty string) (*dto.PhysicianListResponse, error) {
	var (
		physicians []entity.Physician
		err        error
	)
	if specialty != "" {
		physicians, err = u.physicianRepo.FindBySpecialty(u.db.WithContext(ctx), specialty)
	} else {
		physicians, err = u.physicianRepo.FindAll(u.db.WithContext(ctx))
	}
	if err != nil {
		u.log.Warnf("Failed to list physicians: %+v", err)
		return nil, err
	}

	return &dto.PhysicianListResponse{
		Physicians: converter.PhysiciansToResponses(physicians),
		Total:      len(physicians),
	}, nil
}

func (u *physicianUsecase) UpdatePhysician(ctx context.Context, id uuid.UUID, req *dto.UpdatePhysicianRequest) (*dto.PhysicianResponse, error) {
	physician, err := u.physicianRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find physician %s: %+v", id, err)
		return nil, err
	}
	if physician == nil {
		return nil, ErrPhysicianNotFound
	}

	if req.FullName != "" {
		physician.FullName = req.FullName
	}
	if req.Specialty != "" {
		physician.Specialty = req.Specialty
	}
	if req.PhoneNumber != "" {
		physician.PhoneNumber = req.PhoneNumber
	}
	if req.IsActive != nil {
		physician.IsActive = req.IsActive
	}

	if err := u.physicianRepo.Update(u.db.WithContext(ctx), physician); err != nil {
		u.log.Warnf("Failed to update physician %s: %+v", id, err)
		return nil, err
	}

	return converter.PhysicianToResponse(physician), nil
}
