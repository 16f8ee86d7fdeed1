package models

import "time"

// CartItem is a pending-purchase line for a buyer. A buyer holds at most
// one line per product; adding the same product again merges quantities.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required,uuid"`
	ProductID string    `json:"product_id" gorm:"uniqueIndex:idx_cart_user_product;type:varchar(36)" validate:"required,uuid"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLine is a cart item joined with its live product, as returned to
// the client and consumed by checkout.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}
