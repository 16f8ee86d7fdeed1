package repositories

import "vibecart/internal/models"

// SellerStats aggregates a seller's dashboard figures. Revenue only counts
// DELIVERED orders.
type SellerStats struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalOrders  int64   `json:"total_orders"`
}

// OrderRepository defines the interface for order data access. Orders are
// only ever created inside the checkout transaction, so there is no
// standalone Create here.
type OrderRepository interface {
	GetByID(id string) (*models.Order, error)
	ListByBuyer(buyerID string) ([]models.Order, error)
	ListBySeller(sellerID string) ([]models.Order, error)
	// UpdateStatus updates an order's status only when the order belongs
	// to sellerID; ownership is part of the WHERE clause.
	UpdateStatus(id, sellerID, status string) error
	Stats(sellerID string) (*SellerStats, error)
}
