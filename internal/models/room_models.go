package models

import "time"

// RoomStatus defines the type for room occupancy statuses
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "Available"
	RoomStatusOccupied  RoomStatus = "Occupied"
	// RoomStatusRetired marks a soft-deleted room. Retired rooms are kept for
	// order history but excluded from all listings.
	RoomStatusRetired RoomStatus = "Retired"
)

// IsValidRoomStatus checks if the provided status string is a valid RoomStatus.
func IsValidRoomStatus(status string) bool {
	switch RoomStatus(status) {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusRetired:
		return true
	default:
		return false
	}
}

// Room represents a physical room or table that can be occupied by at most
// one active order. Status and ActiveOrderID are derived fields: they change
// only through the attach/detach paths, never through a generic update.
type Room struct {
	ID            int64      `json:"id" db:"id"`
	RoomName      string     `json:"room_name" db:"room_name" binding:"required"`
	RoomType      string     `json:"room_type" db:"room_type" binding:"required"`
	Capacity      int        `json:"capacity" db:"capacity"`
	Status        RoomStatus `json:"status" db:"status"`
	ActiveOrderID *int64     `json:"active_order_id,omitempty" db:"active_order_id"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// RoomFilters defines the available filters for querying rooms.
type RoomFilters struct {
	AvailableOnly bool `form:"available_only"`
	Page          int  `form:"page"`
	PageSize      int  `form:"page_size"`
}
