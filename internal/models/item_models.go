package models

import "time"

// Item is a catalog entry sellable as an order line item.
// Names are unique globally, ignoring case and surrounding whitespace.
type Item struct {
	ID        int64     `json:"id" db:"id"`
	ItemName  string    `json:"item_name" db:"item_name" binding:"required"`
	Category  string    `json:"category" db:"category" binding:"required"`
	Rate      float64   `json:"rate" db:"rate"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ItemFilters defines the available filters for querying catalog items.
type ItemFilters struct {
	ActiveOnly bool `form:"active_only"`
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
}
