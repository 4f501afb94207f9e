package models

import "time"

// OrderStatus defines the type for order statuses
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// IsValidOrderStatus checks if the provided status string is a valid OrderStatus.
func IsValidOrderStatus(status string) bool {
	switch OrderStatus(status) {
	case OrderStatusPending, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// Order is a tab opened against a room, accumulating line items until billed.
// TotalAmount is maintained by the detail mutation paths and always equals
// the sum of the detail amounts. The only status transition is
// Pending -> Completed, performed by bill creation.
type Order struct {
	ID          int64       `json:"id" db:"id"`
	RoomID      int64       `json:"room_id" db:"room_id" binding:"required"`
	Status      OrderStatus `json:"status" db:"status"`
	TotalAmount float64     `json:"total_amount" db:"total_amount"`
	OrderTime   time.Time   `json:"order_time" db:"order_time"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`

	Room         *Room         `json:"room,omitempty"`
	OrderDetails []OrderDetail `json:"order_details,omitempty"`
}

// OrderDetail is one line item within an order. Rate is copied from the item
// at insertion time; Amount is always Quantity * Rate.
type OrderDetail struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"order_id" db:"order_id"`
	ItemID    int64     `json:"item_id" db:"item_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Rate      float64   `json:"rate" db:"rate"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Item *Item `json:"item,omitempty"`
}

// OrderFilters defines the available filters for querying orders.
type OrderFilters struct {
	RoomID   *int64  `form:"room_id"`
	Status   *string `form:"status"`
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
