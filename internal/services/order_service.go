package services

import (
	"fmt"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// DashboardStats summarizes a seller's activity for the dashboard screen.
type DashboardStats struct {
	TotalRevenue   float64 `json:"total_revenue"`
	TotalOrders    int64   `json:"total_orders"`
	ProductsListed int64   `json:"products_listed"`
}

// OrderService handles order queries and seller-side order management.
// Order creation lives in CheckoutService; nothing here writes orders
// other than status changes.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// ListBuyerOrders retrieves a buyer's order history.
func (s *OrderService) ListBuyerOrders(buyerID string) ([]models.Order, error) {
	return s.orderRepo.ListByBuyer(buyerID)
}

// ListSellerOrders retrieves the orders addressed to a seller.
func (s *OrderService) ListSellerOrders(sellerID string) ([]models.Order, error) {
	return s.orderRepo.ListBySeller(sellerID)
}

// UpdateOrderStatus advances the status of an order owned by the seller.
func (s *OrderService) UpdateOrderStatus(orderID, sellerID, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("invalid order status: %s", status)
	}
	if err := s.orderRepo.UpdateStatus(orderID, sellerID, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", orderID, err)
	}
	return nil
}

// Dashboard aggregates the seller's revenue, order and listing counts.
func (s *OrderService) Dashboard(sellerID string) (*DashboardStats, error) {
	orderStats, err := s.orderRepo.Stats(sellerID)
	if err != nil {
		return nil, err
	}
	productCount, err := s.productRepo.CountBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		TotalRevenue:   orderStats.TotalRevenue,
		TotalOrders:    orderStats.TotalOrders,
		ProductsListed: productCount,
	}, nil
}
