package repositories

import "vibecart/internal/models"

// CartRepository defines the interface for cart data access. The cart is
// server-authoritative: checkout reads it fresh and never trusts
// client-submitted lines or prices.
type CartRepository interface {
	// GetLines returns the buyer's cart joined with live product rows.
	GetLines(userID string) ([]models.CartLine, error)
	GetItem(userID, productID string) (*models.CartItem, error)
	// Upsert inserts the item or, when the (user, product) pair already
	// exists, replaces its quantity.
	Upsert(item *models.CartItem) error
	Remove(userID, productID string) error
	Clear(userID string) error
}
