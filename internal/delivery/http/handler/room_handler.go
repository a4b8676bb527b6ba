package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hospital-appointment-api/internal/delivery/dto"
	"hospital-appointment-api/internal/usecase"
	"hospital-appointment-api/pkg/response"
	"hospital-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type RoomHandler struct {
	roomUsecase usecase.RoomUsecase
	validator   *validator.CustomValidator
}

func NewRoomHandler(roomUsecase usecase.RoomUsecase, validator *validator.CustomValidator) *RoomHandler {
	return &RoomHandler{
		roomUsecase: roomUsecase,
		validator:   validator,
	}
}

func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.CreateRoom(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomNameAlreadyExists) {
			response.Error(w, http.StatusConflict, "Room name already exists", nil)
			return
		}
		response.InternalServerError(w, "Failed to create room")
		return
	}

	response.Success(w, http.StatusCreated, "Room created successfully", room)
}

func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	room, err := h.roomUsecase.GetRoom(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomNotFound) {
			response.NotFound(w, "Room not found")
			return
		}
		response.InternalServerError(w, "Failed to get room")
		return
	}

	response.Success(w, http.StatusOK, "Room retrieved successfully", room)
}

func (h *RoomHandler) GetAllRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.roomUsecase.GetAllRooms(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get rooms")
		return
	}

	response.Success(w, http.StatusOK, "Rooms retrieved successfully", rooms)
}

func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid room ID", nil)
		return
	}

	var req dto.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	room, err := h.roomUsecase.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomNotFound):
			response.NotFound(w, "Room not found")
		case errors.Is(err, usecase.ErrRoomNameAlreadyExists):
			response.Error(w, http.StatusConflict, "Room name already exists", nil)
		default:
			response.InternalServerError(w, "Failed to update room")
		}
		return
	}

	response.Success(w, http.StatusOK, "Room updated successfully", room)
}
