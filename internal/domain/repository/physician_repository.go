package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhysicianRepository interface {
	Create(db *gorm.DB, physician *entity.Physician) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Physician, error)
	FindAll(db *gorm.DB) ([]entity.Physician, error)
	FindBySpecialty(db *gorm.DB, specialty string) ([]entity.Physician, error)
	Update(db *gorm.DB, physician *entity.Physician) error
}
