package models

import "time"

// Bill is the closeout record for a completed order. At most one bill may
// exist per order; TotalAmount is snapshotted from the order at close time
// and FinalAmount = TotalAmount - DiscountAmount + TaxAmount.
// PaymentStatus is a free-text label, not a processed transaction.
type Bill struct {
	ID             int64     `json:"id" db:"id"`
	OrderID        int64     `json:"order_id" db:"order_id" binding:"required"`
	TotalAmount    float64   `json:"total_amount" db:"total_amount"`
	DiscountAmount float64   `json:"discount_amount" db:"discount_amount"`
	TaxAmount      float64   `json:"tax_amount" db:"tax_amount"`
	FinalAmount    float64   `json:"final_amount" db:"final_amount"`
	PaymentStatus  string    `json:"payment_status" db:"payment_status"`
	BillTime       time.Time `json:"bill_time" db:"bill_time"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`

	Order *Order `json:"order,omitempty"`
}

// BillFilters defines the available filters for querying bills.
type BillFilters struct {
	OrderID  *int64 `form:"order_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}
