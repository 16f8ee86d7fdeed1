package services

import (
	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// AddressService handles shipping address management.
type AddressService struct {
	repo repositories.AddressRepository
}

// NewAddressService creates a new AddressService.
func NewAddressService(repo repositories.AddressRepository) *AddressService {
	return &AddressService{
		repo: repo,
	}
}

// ListAddresses retrieves the user's addresses.
func (s *AddressService) ListAddresses(userID string) ([]models.Address, error) {
	return s.repo.ListByUser(userID)
}

// CreateAddress creates an address owned by the user.
func (s *AddressService) CreateAddress(userID string, address *models.Address) error {
	address.UserID = userID
	return s.repo.Create(address)
}
