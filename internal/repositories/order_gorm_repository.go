package repositories

import (
	"fmt"
	"vibecart/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// ListByBuyer retrieves a buyer's orders with items, newest first.
func (r *GORMOrderRepository) ListByBuyer(buyerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("buyer_id = ?", buyerID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for buyer %s: %w", buyerID, err)
	}
	return orders, nil
}

// ListBySeller retrieves a seller's orders with items, newest first.
func (r *GORMOrderRepository) ListBySeller(sellerID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("seller_id = ?", sellerID).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders for seller %s: %w", sellerID, err)
	}
	return orders, nil
}

// UpdateStatus updates the status of an order owned by sellerID.
func (r *GORMOrderRepository) UpdateStatus(id, sellerID, status string) error {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s not found for status update", id)
	}
	return nil
}

// Stats aggregates dashboard figures for a seller.
func (r *GORMOrderRepository) Stats(sellerID string) (*SellerStats, error) {
	var stats SellerStats
	err := r.db.Model(&models.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, models.OrderStatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue for seller %s: %w", sellerID, err)
	}
	err = r.db.Model(&models.Order{}).Where("seller_id = ?", sellerID).Count(&stats.TotalOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders for seller %s: %w", sellerID, err)
	}
	return &stats, nil
}
