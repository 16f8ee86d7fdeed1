package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"vibecart/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s not found", id)
	}
	return &order, nil
}

// ListByBuyer returns a buyer's orders, newest first.
func (r *MockOrderRepository) ListByBuyer(buyerID string) ([]models.Order, error) {
	return r.list(func(o models.Order) bool { return o.BuyerID == buyerID })
}

// ListBySeller returns a seller's orders, newest first.
func (r *MockOrderRepository) ListBySeller(sellerID string) ([]models.Order, error) {
	return r.list(func(o models.Order) bool { return o.SellerID == sellerID })
}

func (r *MockOrderRepository) list(keep func(models.Order) bool) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orderList []models.Order
	for _, order := range r.orders {
		if keep(order) {
			orderList = append(orderList, order)
		}
	}
	sort.Slice(orderList, func(i, j int) bool {
		return orderList[i].CreatedAt.After(orderList[j].CreatedAt)
	})
	return orderList, nil
}

// create adds an order. Only the in-memory checkout repository calls this;
// orders never appear outside a placement.
func (r *MockOrderRepository) create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order owned by sellerID.
func (r *MockOrderRepository) UpdateStatus(id, sellerID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok || order.SellerID != sellerID {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Stats aggregates dashboard figures for a seller.
func (r *MockOrderRepository) Stats(sellerID string) (*SellerStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats SellerStats
	for _, order := range r.orders {
		if order.SellerID != sellerID {
			continue
		}
		stats.TotalOrders++
		if order.Status == models.OrderStatusDelivered {
			stats.TotalRevenue += order.TotalAmount
		}
	}
	return &stats, nil
}
