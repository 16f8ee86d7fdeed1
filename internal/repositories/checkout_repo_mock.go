package repositories

import (
	"fmt"
	"sync"
	"vibecart/internal/models"
)

// MockCheckoutRepository is an in-memory implementation of
// CheckoutRepository built on the other in-memory repositories. A single
// mutex serializes commits; within one commit the wallet debit and every
// stock decrement are floor-checked, and any refusal undoes the writes
// already applied so a failed commit leaves every store untouched.
type MockCheckoutRepository struct {
	users  *MockUserRepository
	carts  *MockCartRepository
	orders *MockOrderRepository
	ledger *MockLedgerRepository

	products *MockProductRepository
	mu       sync.Mutex
}

// NewMockCheckoutRepository creates a new instance of MockCheckoutRepository.
func NewMockCheckoutRepository(
	users *MockUserRepository,
	products *MockProductRepository,
	carts *MockCartRepository,
	orders *MockOrderRepository,
	ledger *MockLedgerRepository,
) *MockCheckoutRepository {
	return &MockCheckoutRepository{
		users:    users,
		products: products,
		carts:    carts,
		orders:   orders,
		ledger:   ledger,
	}
}

// Commit applies the placement all-or-nothing.
func (r *MockCheckoutRepository) Commit(buyerID string, total float64, orders []*models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.users.adjustBalance(buyerID, -total); err != nil {
		return err
	}

	var applied []models.OrderItem
	undo := func() {
		for _, item := range applied {
			// Re-crediting stock cannot fail: the product was just decremented.
			_ = r.products.creditStock(item.ProductID, item.Quantity)
		}
		_, _ = r.users.adjustBalance(buyerID, total)
	}

	for _, order := range orders {
		for _, item := range order.Items {
			if err := r.products.decrementStock(item.ProductID, item.Quantity); err != nil {
				undo()
				return err
			}
			applied = append(applied, item)
		}
	}

	for _, order := range orders {
		if err := r.orders.create(order); err != nil {
			undo()
			return fmt.Errorf("failed to create order: %w", err)
		}
	}

	r.ledger.append(models.WalletTransaction{
		UserID: buyerID,
		Amount: -total,
		Type:   models.TransactionPurchase,
	})

	return r.carts.Clear(buyerID)
}
