package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type availabilityWindowRepository struct{}

func NewAvailabilityWindowRepository() domainRepo.AvailabilityWindowRepository {
	return &availabilityWindowRepository{}
}

func (r *availabilityWindowRepository) Create(db *gorm.DB, window *entity.AvailabilityWindow) error {
	return db.Create(window).Error
}

func (r *availabilityWindowRepository) FindByID(db *gorm.DB, id int) (*entity.AvailabilityWindow, error) {
	var window entity.AvailabilityWindow
	err := db.Where("id = ?", id).First(&window).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &window, nil
}

func (r *availabilityWindowRepository) FindByPhysicianID(db *gorm.DB, physicianID uuid.UUID) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("physician_id = ?", physicianID).
		Order("weekday ASC, start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) FindByPhysicianAndWeekday(db *gorm.DB, physicianID uuid.UUID, weekday int) ([]entity.AvailabilityWindow, error) {
	var windows []entity.AvailabilityWindow
	err := db.Where("physician_id = ? AND weekday = ?", physicianID, weekday).
		Order("start_time ASC").
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *availabilityWindowRepository) Update(db *gorm.DB, window *entity.AvailabilityWindow) error {
	return db.Save(window).Error
}
