package models

import "time"

// Order statuses. An order starts PENDING and is advanced by its seller.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// ValidOrderStatus reports whether s is one of the known order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderItem represents a single line within an order. Price is captured
// at purchase time and is decoupled from the live product price.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // Price at the time of order
}

// Order represents one seller's share of a checkout. A checkout that spans
// several sellers produces one Order per seller; an order never spans
// multiple sellers.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID     string      `json:"buyer_id" gorm:"index;type:varchar(36)"`
	SellerID    string      `json:"seller_id" gorm:"index;type:varchar(36)"`
	AddressID   string      `json:"address_id" gorm:"type:varchar(36)"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status" gorm:"type:varchar(16);default:PENDING"`
	Items       []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
