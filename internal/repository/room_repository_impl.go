package repository

import (
	"errors"

	"hospital-appointment-api/internal/domain/entity"
	domainRepo "hospital-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type roomRepository struct{}

func NewRoomRepository() domainRepo.RoomRepository {
	return &roomRepository{}
}

func (r *roomRepository) Create(db *gorm.DB, room *entity.Room) error {
	return db.Create(room).Error
}

func (r *roomRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Room, error) {
	var room entity.Room
	err := db.Where("id = ?", id).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(db *gorm.DB) ([]entity.Room, error) {
	var rooms []entity.Room
	err := db.Order("name ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Update(db *gorm.DB, room *entity.Room) error {
	return db.Save(room).Error
}
