package repositories

import (
	"fmt"
	"vibecart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetLines returns the buyer's cart items joined with their live products.
// Lines whose product was deleted since being added are skipped.
func (r *GORMCartRepository) GetLines(userID string) ([]models.CartLine, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Order("created_at asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := r.db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, fmt.Errorf("failed to load product %s for cart: %w", item.ProductID, err)
		}
		lines = append(lines, models.CartLine{CartItem: item, Product: product})
	}
	return lines, nil
}

// GetItem retrieves a single cart item by its (user, product) pair.
func (r *GORMCartRepository) GetItem(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	return &item, nil
}

// Upsert inserts the cart item or replaces the quantity of an existing one.
func (r *GORMCartRepository) Upsert(item *models.CartItem) error {
	existing, err := r.GetItem(item.UserID, item.ProductID)
	if err != nil {
		return err
	}
	if existing != nil {
		res := r.db.Model(&models.CartItem{}).Where("id = ?", existing.ID).Update("quantity", item.Quantity)
		if res.Error != nil {
			return fmt.Errorf("failed to update cart item: %w", res.Error)
		}
		item.ID = existing.ID
		return nil
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Remove deletes a single cart line.
func (r *GORMCartRepository) Remove(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for product %s not found", productID)
	}
	return nil
}

// Clear deletes all of the user's cart lines.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
