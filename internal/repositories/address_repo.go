package repositories

import "vibecart/internal/models"

// AddressRepository defines the interface for shipping address data access.
type AddressRepository interface {
	Create(address *models.Address) error
	GetByID(id string) (*models.Address, error)
	ListByUser(userID string) ([]models.Address, error)
}
