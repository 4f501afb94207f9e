package services

import "errors"

// Shared service errors. Handlers map these with errors.Is onto API error
// codes: ErrValidation -> 400, *NotFound -> 404, the state/uniqueness
// conflicts -> 409. Repository errors never cross the handler boundary raw.
var (
	// ErrValidation marks malformed or out-of-range input. Always recoverable
	// by the caller.
	ErrValidation = errors.New("validation error")

	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNameExists = errors.New("a room with this name already exists for this room type")
	ErrRoomOccupied   = errors.New("room already has an active order")
	ErrRoomHasOrders  = errors.New("room cannot be deleted while orders reference it")

	ErrItemNotFound   = errors.New("item not found")
	ErrItemNameExists = errors.New("an item with this name already exists")
	ErrItemInUse      = errors.New("item cannot be deleted while order details reference it")

	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderDetailNotFound = errors.New("order detail not found")
	ErrOrderCompleted      = errors.New("order is already completed")
	ErrOrderHasDetails     = errors.New("order cannot be deleted while order details reference it")

	ErrBillNotFound = errors.New("bill not found")
	ErrBillExists   = errors.New("a bill already exists for this order")
)

// RoomDeletePolicy selects how DeleteRoom disposes of a room: a hard row
// delete or a soft status flip to Retired. The policy is fixed at
// construction time; there is exactly one deletion code path.
type RoomDeletePolicy string

const (
	RoomDeleteHard RoomDeletePolicy = "hard"
	RoomDeleteSoft RoomDeletePolicy = "soft"
)

// ParseRoomDeletePolicy maps a configuration string onto a policy,
// defaulting to soft deletion for anything unrecognized.
func ParseRoomDeletePolicy(s string) RoomDeletePolicy {
	if RoomDeletePolicy(s) == RoomDeleteHard {
		return RoomDeleteHard
	}
	return RoomDeleteSoft
}
