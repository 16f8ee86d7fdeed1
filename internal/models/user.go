package models

import "gorm.io/gorm"

// Roles a user account can hold.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents a marketplace account (buyer, seller or admin).
type User struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string  `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email         string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Role          string  `json:"role" gorm:"type:varchar(16);default:buyer" validate:"omitempty,oneof=buyer seller admin"`
	WalletBalance float64 `json:"wallet_balance" gorm:"not null;default:0" validate:"gte=0"`
	PasswordHash  string  `json:"-" gorm:"type:varchar(255)"` // Never serialized
	gorm.Model            // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
