package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type physicianRepository struct{}

func NewPhysicianRepository() domainRepo.PhysicianRepository {
	return &physicianRepository{}
}

func (r *physicianRepository) Create(db *gorm.DB, physician *entity.Physician) error {
	return db.Create(physician).Error
}

func (r *physicianRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Physician, error) {
	var physician entity.Physician
	err := db.Where("id = ?", id).First(&physician).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &physician, nil
}

func (r *physicianRepository) FindAll(db *gorm.DB) ([]entity.Physician, error) {
	var physicians []entity.Physician
	err := db.Order("full_name ASC").Find(&physicians).Error
	if err != nil {
		return nil, err
	}
	return physicians, nil
}

func (r *physicianRepository) FindBySpecialty(db *gorm.DB, specialty string) ([]entity.Physician, error) {
	var physicians []entity.Physician
	err := db.Where("specialty ILIKE ?", "%"+specialty+"%").
		Order("full_name ASC").
		Find(&physicians).Error
	if err != nil {
		return nil, err
	}
	return physicians, nil
}

func (r *physicianRepository) Update(db *gorm.DB, physician *entity.Physician) error {
	return db.Save(physician).Error
}
