package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hms_backend/internal/models"
)

// RoomRepository defines the interface for room-related database operations.
// AttachOrder and DetachOrder are the only paths that touch a room's status
// and active order reference.
type RoomRepository interface {
	CreateRoom(executor SQLExecutor, room *models.Room) (int64, error)
	GetRoomByID(roomID int64) (*models.Room, error)
	// GetRoomByTypeAndName looks a room up by its uniqueness key
	// (type + case/whitespace-normalized name), skipping excludeID.
	GetRoomByTypeAndName(roomType, roomName string, excludeID int64) (*models.Room, error)
	GetRooms(filters models.RoomFilters) ([]models.Room, int, error) // rooms, total count, error
	UpdateRoom(executor SQLExecutor, room *models.Room) error
	DeleteRoom(executor SQLExecutor, roomID int64) error
	RetireRoom(executor SQLExecutor, roomID int64) error
	AttachOrder(executor SQLExecutor, roomID, orderID int64) error
	DetachOrder(executor SQLExecutor, roomID int64) error
}

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new instance of RoomRepository.
func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

const roomColumns = `id, room_name, room_type, capacity, status, active_order_id, created_at, updated_at`

func scanRoom(row scanner) (*models.Room, error) {
	room := &models.Room{}
	var activeOrderID sql.NullInt64
	err := row.Scan(
		&room.ID, &room.RoomName, &room.RoomType, &room.Capacity, &room.Status,
		&activeOrderID, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if activeOrderID.Valid {
		room.ActiveOrderID = &activeOrderID.Int64
	}
	return room, nil
}

func (r *roomRepository) CreateRoom(executor SQLExecutor, room *models.Room) (int64, error) {
	query := `INSERT INTO rooms (room_name, room_type, capacity, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`

	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}
	if room.UpdatedAt.IsZero() {
		room.UpdatedAt = time.Now()
	}

	err := executor.QueryRow(query,
		room.RoomName, room.RoomType, room.Capacity, room.Status,
		room.CreatedAt, room.UpdatedAt,
	).Scan(&room.ID)
	if err != nil {
		return 0, wrapWriteError(err, "creating room")
	}
	return room.ID, nil
}

func (r *roomRepository) GetRoomByID(roomID int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`
	room, err := scanRoom(r.db.QueryRow(query, roomID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting room by ID %d: %v", ErrDatabaseError, roomID, err)
	}
	return room, nil
}

func (r *roomRepository) GetRoomByTypeAndName(roomType, roomName string, excludeID int64) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms
	          WHERE room_type = $1 AND LOWER(TRIM(room_name)) = LOWER(TRIM($2)) AND id <> $3`
	room, err := scanRoom(r.db.QueryRow(query, strings.TrimSpace(roomType), roomName, excludeID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting room by type and name: %v", ErrDatabaseError, err)
	}
	return room, nil
}

func (r *roomRepository) GetRooms(filters models.RoomFilters) ([]models.Room, int, error) {
	rooms := []models.Room{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + roomColumns + `, COUNT(*) OVER() as total_count FROM rooms`)

	var args []interface{}
	if filters.AvailableOnly {
		queryBuilder.WriteString(` WHERE status = $1`)
		args = append(args, models.RoomStatusAvailable)
	} else {
		queryBuilder.WriteString(` WHERE status <> $1`)
		args = append(args, models.RoomStatusRetired)
	}

	queryBuilder.WriteString(` ORDER BY id`)
	if filters.PageSize > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` LIMIT $%d`, len(args)+1))
		args = append(args, filters.PageSize)
		if filters.Page > 0 {
			queryBuilder.WriteString(fmt.Sprintf(` OFFSET $%d`, len(args)+1))
			args = append(args, (filters.Page-1)*filters.PageSize)
		}
	}

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying rooms: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var room models.Room
		var activeOrderID sql.NullInt64
		err := rows.Scan(
			&room.ID, &room.RoomName, &room.RoomType, &room.Capacity, &room.Status,
			&activeOrderID, &room.CreatedAt, &room.UpdatedAt,
			&totalCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning room: %v", ErrDatabaseError, err)
		}
		if activeOrderID.Valid {
			room.ActiveOrderID = &activeOrderID.Int64
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating room rows: %v", ErrDatabaseError, err)
	}
	return rooms, totalCount, nil
}

// UpdateRoom persists name, type and capacity. Status and active_order_id are
// derived fields and only change through AttachOrder/DetachOrder/RetireRoom.
func (r *roomRepository) UpdateRoom(executor SQLExecutor, room *models.Room) error {
	query := `UPDATE rooms SET room_name = $1, room_type = $2, capacity = $3, updated_at = $4 WHERE id = $5`
	result, err := executor.Exec(query, room.RoomName, room.RoomType, room.Capacity, time.Now(), room.ID)
	if err != nil {
		return wrapWriteError(err, fmt.Sprintf("updating room ID %d", room.ID))
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for room update ID %d: %v", ErrDatabaseError, room.ID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepository) DeleteRoom(executor SQLExecutor, roomID int64) error {
	query := `DELETE FROM rooms WHERE id = $1`
	result, err := executor.Exec(query, roomID)
	if err != nil {
		return fmt.Errorf("%w: deleting room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for deleting room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepository) RetireRoom(executor SQLExecutor, roomID int64) error {
	query := `UPDATE rooms SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := executor.Exec(query, models.RoomStatusRetired, time.Now(), roomID)
	if err != nil {
		return fmt.Errorf("%w: retiring room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for retiring room ID %d: %v", ErrDatabaseError, roomID, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachOrder marks the room occupied by the given order. The update is
// conditional on no active order being present, so two concurrent attaches
// inside open-order transactions cannot both succeed.
func (r *roomRepository) AttachOrder(executor SQLExecutor, roomID, orderID int64) error {
	query := `UPDATE rooms SET status = $1, active_order_id = $2, updated_at = $3
	          WHERE id = $4 AND active_order_id IS NULL AND status <> $5`
	result, err := executor.Exec(query, models.RoomStatusOccupied, orderID, time.Now(), roomID, models.RoomStatusRetired)
	if err != nil {
		return fmt.Errorf("%w: attaching order %d to room %d: %v", ErrDatabaseError, orderID, roomID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for attaching order to room %d: %v", ErrDatabaseError, roomID, err)
	}
	if rowsAffected == 0 {
		// Either the room does not exist or it already holds an active order.
		var exists bool
		if err := executor.QueryRow(`SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`, roomID).Scan(&exists); err != nil {
			return fmt.Errorf("%w: checking room %d existence: %v", ErrDatabaseError, roomID, err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: room %d already has an active order", ErrDuplicateKey, roomID)
	}
	return nil
}

// DetachOrder clears the active order reference and returns the room to
// Available. Idempotent: detaching an already-available room is a no-op.
func (r *roomRepository) DetachOrder(executor SQLExecutor, roomID int64) error {
	query := `UPDATE rooms SET status = $1, active_order_id = NULL, updated_at = $2
	          WHERE id = $3 AND status <> $4`
	result, err := executor.Exec(query, models.RoomStatusAvailable, time.Now(), roomID, models.RoomStatusRetired)
	if err != nil {
		return fmt.Errorf("%w: detaching order from room %d: %v", ErrDatabaseError, roomID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for detaching order from room %d: %v", ErrDatabaseError, roomID, err)
	}
	if rowsAffected == 0 {
		var exists bool
		if err := executor.QueryRow(`SELECT EXISTS (SELECT 1 FROM rooms WHERE id = $1)`, roomID).Scan(&exists); err != nil {
			return fmt.Errorf("%w: checking room %d existence: %v", ErrDatabaseError, roomID, err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}
