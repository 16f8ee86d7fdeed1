package repositories

import "vibecart/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// ListOthers returns every user except the one identified by excludeID,
	// newest first. Used by the admin user management screen.
	ListOthers(excludeID string) ([]models.User, error)
	Delete(id string) error
}
