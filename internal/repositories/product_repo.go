package repositories

import (
	"vibecart/internal/models"
)

// ProductRepository defines the interface for product data access.
// Seller-scoped writes carry the seller ID so ownership is enforced in the
// query itself rather than checked after a read.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	Search(query string) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	ListBySeller(sellerID string) ([]models.Product, error)
	CountBySeller(sellerID string) (int64, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id, sellerID string) error
}
