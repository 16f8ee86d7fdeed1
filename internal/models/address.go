package models

import "time"

// Address is a shipping address owned by a user. Once referenced by an
// order it is treated as immutable.
type Address struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Street     string    `json:"street" validate:"required,max=255"`
	City       string    `json:"city" validate:"required,max=100"`
	Province   string    `json:"province" validate:"required,max=100"`
	PostalCode string    `json:"postal_code" validate:"required,max=20"`
	CreatedAt  time.Time `json:"created_at"`
}
