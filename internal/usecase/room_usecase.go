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

var ErrRoomNameAlreadyExists = errors.New("room name already exists")

type RoomUsecase interface {
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error)
	GetAllRooms(ctx context.Context) (*dto.RoomListResponse, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error)
}

type roomUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roomRepo repository.RoomRepository
}

func NewRoomUsecase(db *gorm.DB, log *logrus.Logger, roomRepo repository.RoomRepository) RoomUsecase {
	return &roomUsecase{
		db:       db,
		log:      log,
		roomRepo: roomRepo,
	}
}

func (u *roomUsecase) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*dto.RoomResponse, error) {
	room := &entity.Room{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := u.roomRepo.Create(u.db.WithContext(ctx), room); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoomNameAlreadyExists
		}
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetRoom(ctx context.Context, id uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) GetAllRooms(ctx context.Context) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}

	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) UpdateRoom(ctx context.Context, id uuid.UUID, req *dto.UpdateRoomRequest) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find room %s: %+v", id, err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Location != "" {
		room.Location = req.Location
	}

	if err := u.roomRepo.Update(u.db.WithContext(ctx), room); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrRoomNameAlreadyExists
		}
		u.log.Warnf("Failed to update room %s: %+v", id, err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}
