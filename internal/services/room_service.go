package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hms_backend/internal/models"
	"hms_backend/internal/repositories"
	"hms_backend/pkg/utils"
)

const (
	MaxRoomNameLength = 100
	MaxRoomTypeLength = 50
	MinRoomCapacity   = 1
	MaxRoomCapacity   = 100
)

// --- Room DTOs ---

// CreateRoomRequest is used for creating a new room.
type CreateRoomRequest struct {
	RoomName string `json:"room_name" binding:"required"`
	RoomType string `json:"room_type" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
}

// UpdateRoomRequest is used for updating an existing room. Nil fields are
// left unchanged. Status and the active order reference are derived and
// deliberately absent: they change only through attach/detach.
type UpdateRoomRequest struct {
	RoomName *string `json:"room_name"`
	RoomType *string `json:"room_type"`
	Capacity *int    `json:"capacity"`
}

// --- RoomService Interface ---
type RoomService interface {
	CreateRoom(req CreateRoomRequest) (*models.Room, error)
	GetRoomByID(roomID int64) (*models.Room, error)
	GetRooms(filters models.RoomFilters) ([]models.Room, int, error)
	UpdateRoom(roomID int64, req UpdateRoomRequest) (*models.Room, error)
	DeleteRoom(roomID int64) error
}

// --- roomService Implementation ---
type roomService struct {
	roomRepo     repositories.RoomRepository
	orderRepo    repositories.OrderRepository // for the delete-while-referenced guard
	db           *sql.DB
	deletePolicy RoomDeletePolicy
}

// NewRoomService creates a new instance of RoomService.
func NewRoomService(rr repositories.RoomRepository, or repositories.OrderRepository, db *sql.DB, deletePolicy RoomDeletePolicy) RoomService {
	return &roomService{
		roomRepo:     rr,
		orderRepo:    or,
		db:           db,
		deletePolicy: deletePolicy,
	}
}

func validateRoomFields(roomName, roomType string, capacity int) error {
	if utils.IsEmpty(roomName) {
		return fmt.Errorf("%w: room name is required", ErrValidation)
	}
	if utils.ExceedsLength(roomName, MaxRoomNameLength) {
		return fmt.Errorf("%w: room name cannot exceed %d characters", ErrValidation, MaxRoomNameLength)
	}
	if utils.IsEmpty(roomType) {
		return fmt.Errorf("%w: room type is required", ErrValidation)
	}
	if utils.ExceedsLength(roomType, MaxRoomTypeLength) {
		return fmt.Errorf("%w: room type cannot exceed %d characters", ErrValidation, MaxRoomTypeLength)
	}
	if !utils.InRange(capacity, MinRoomCapacity, MaxRoomCapacity) {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrValidation, MinRoomCapacity, MaxRoomCapacity)
	}
	return nil
}

// checkRoomNameUnique ensures no other room of the same type carries the
// same normalized name.
func (s *roomService) checkRoomNameUnique(roomType, roomName string, excludeID int64) error {
	_, err := s.roomRepo.GetRoomByTypeAndName(roomType, utils.NormalizeName(roomName), excludeID)
	if err == nil {
		return ErrRoomNameExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check room name uniqueness: %w", err)
	}
	return nil
}

func (s *roomService) CreateRoom(req CreateRoomRequest) (*models.Room, error) {
	if err := validateRoomFields(req.RoomName, req.RoomType, req.Capacity); err != nil {
		return nil, err
	}
	if err := s.checkRoomNameUnique(req.RoomType, req.RoomName, 0); err != nil {
		return nil, err
	}

	room := models.Room{
		RoomName: strings.TrimSpace(req.RoomName),
		RoomType: strings.TrimSpace(req.RoomType),
		Capacity: req.Capacity,
		Status:   models.RoomStatusAvailable, // New rooms are available, no active order
	}

	_, err := s.roomRepo.CreateRoom(s.db, &room)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrRoomNameExists
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *roomService) GetRoomByID(roomID int64) (*models.Room, error) {
	room, err := s.roomRepo.GetRoomByID(roomID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}
	if room.Status == models.RoomStatusRetired {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) GetRooms(filters models.RoomFilters) ([]models.Room, int, error) {
	if !utils.IsValidPagination(filters.Page, filters.PageSize) {
		return nil, 0, fmt.Errorf("%w: page and page_size must be positive", ErrValidation)
	}
	rooms, totalCount, err := s.roomRepo.GetRooms(filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get rooms: %w", err)
	}
	return rooms, totalCount, nil
}

func (s *roomService) UpdateRoom(roomID int64, req UpdateRoomRequest) (*models.Room, error) {
	room, err := s.GetRoomByID(roomID)
	if err != nil {
		return nil, err
	}

	if req.RoomName != nil {
		room.RoomName = strings.TrimSpace(*req.RoomName)
	}
	if req.RoomType != nil {
		room.RoomType = strings.TrimSpace(*req.RoomType)
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}

	if err := validateRoomFields(room.RoomName, room.RoomType, room.Capacity); err != nil {
		return nil, err
	}
	if err := s.checkRoomNameUnique(room.RoomType, room.RoomName, roomID); err != nil {
		return nil, err
	}

	if err := s.roomRepo.UpdateRoom(s.db, room); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrRoomNameExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return room, nil
}

// DeleteRoom removes a room according to the configured policy. A room
// referenced by any order, whatever its status, cannot be deleted.
func (s *roomService) DeleteRoom(roomID int64) error {
	if _, err := s.GetRoomByID(roomID); err != nil {
		return err
	}

	orderCount, err := s.orderRepo.CountOrdersByRoomID(roomID)
	if err != nil {
		return fmt.Errorf("failed to check room references: %w", err)
	}
	if orderCount > 0 {
		return ErrRoomHasOrders
	}

	if s.deletePolicy == RoomDeleteHard {
		err = s.roomRepo.DeleteRoom(s.db, roomID)
	} else {
		err = s.roomRepo.RetireRoom(s.db, roomID)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoomNotFound
		}
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
