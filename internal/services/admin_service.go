package services

import (
	"fmt"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// AdminService handles admin-only user management.
type AdminService struct {
	userRepo repositories.UserRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repositories.UserRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
	}
}

// ListUsers returns every account except the admin's own.
func (s *AdminService) ListUsers(adminID string) ([]models.User, error) {
	return s.userRepo.ListOthers(adminID)
}

// DeleteUser removes an account. Admins cannot delete their own account.
func (s *AdminService) DeleteUser(adminID, targetID string) error {
	if adminID == targetID {
		return ErrSelfDelete
	}
	if err := s.userRepo.Delete(targetID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", targetID, err)
	}
	return nil
}
