package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"vibecart/internal/models"

	"github.com/google/uuid"
)

// MockCartRepository is an in-memory implementation of CartRepository. It
// needs the product repository to join cart items with live products.
type MockCartRepository struct {
	items    map[string]models.CartItem
	products *MockProductRepository
	mu       sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository(products *MockProductRepository) *MockCartRepository {
	return &MockCartRepository{
		items:    make(map[string]models.CartItem),
		products: products,
	}
}

// GetLines returns the buyer's cart joined with live product rows, in the
// order the items were added. Lines whose product disappeared are skipped.
func (r *MockCartRepository) GetLines(userID string) ([]models.CartLine, error) {
	r.mu.RLock()
	var items []models.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	r.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		product, err := r.products.GetByID(item.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, models.CartLine{CartItem: item, Product: *product})
	}
	return lines, nil
}

// GetItem returns a cart item by its (user, product) pair, or nil.
func (r *MockCartRepository) GetItem(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			i := item
			return &i, nil
		}
	}
	return nil, nil
}

// Upsert inserts or replaces the quantity of a cart item.
func (r *MockCartRepository) Upsert(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			existing.Quantity = item.Quantity
			existing.UpdatedAt = time.Now()
			r.items[id] = existing
			item.ID = id
			return nil
		}
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()
	item.UpdatedAt = item.CreatedAt
	r.items[item.ID] = *item
	return nil
}

// Remove deletes a single cart line.
func (r *MockCartRepository) Remove(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			delete(r.items, id)
			return nil
		}
	}
	return fmt.Errorf("cart item for product %s not found", productID)
}

// Clear deletes all of the user's cart lines.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, item := range r.items {
		if item.UserID == userID {
			delete(r.items, id)
		}
	}
	return nil
}
