package models

import "time"

// User is an authentication/authorization entity. The floor-management core
// consumes it only as an opaque actor identity carried in the JWT claims.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username" binding:"required"`
	Email     *string   `json:"email,omitempty" db:"email"`
	FullName  *string   `json:"full_name,omitempty" db:"full_name"`
	Role      string    `json:"role" db:"role"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
