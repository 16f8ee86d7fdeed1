package services

import (
	"fmt"
	"math"

	"vibecart/internal/models"
	"vibecart/internal/repositories"
)

// TopUpCeiling is the maximum single top-up, in currency minor units.
const TopUpCeiling = 10_000_000

// WalletService handles wallet top-ups and ledger queries.
type WalletService struct {
	userRepo   repositories.UserRepository
	ledgerRepo repositories.LedgerRepository
}

// NewWalletService creates a new WalletService.
func NewWalletService(userRepo repositories.UserRepository, ledgerRepo repositories.LedgerRepository) *WalletService {
	return &WalletService{
		userRepo:   userRepo,
		ledgerRepo: ledgerRepo,
	}
}

// TopUp credits the user's wallet and appends the matching TOPUP ledger
// entry atomically, returning the new balance. A rejected amount mutates
// nothing.
func (s *WalletService) TopUp(userID string, amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 || amount > TopUpCeiling {
		return 0, ErrInvalidAmount
	}

	newBalance, err := s.ledgerRepo.TopUp(userID, amount)
	if err != nil {
		return 0, fmt.Errorf("top-up failed for user %s: %w", userID, err)
	}
	return newBalance, nil
}

// GetProfile returns the user's account including their wallet balance.
func (s *WalletService) GetProfile(userID string) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// GetTransactions returns the user's ledger history, newest first.
func (s *WalletService) GetTransactions(userID string) ([]models.WalletTransaction, error) {
	return s.ledgerRepo.ListByUser(userID)
}
