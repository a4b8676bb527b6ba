package repository

import (
	"hospital-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityWindowRepository interface {
	Create(db *gorm.DB, window *entity.AvailabilityWindow) error
	FindByID(db *gorm.DB, id int) (*entity.AvailabilityWindow, error)
	FindByPhysicianID(db *gorm.DB, physicianID uuid.UUID) ([]entity.AvailabilityWindow, error)
	// FindByPhysicianAndWeekday returns the physician's windows for one
	// weekday ordered by start time; an empty slice when none are declared.
	FindByPhysicianAndWeekday(db *gorm.DB, physicianID uuid.UUID, weekday int) ([]entity.AvailabilityWindow, error)
	Update(db *gorm.DB, window *entity.AvailabilityWindow) error
}
