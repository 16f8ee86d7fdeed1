package repositories

import (
	"fmt"
	"vibecart/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMLedgerRepository is a GORM implementation of LedgerRepository.
type GORMLedgerRepository struct {
	db *gorm.DB
}

// NewGORMLedgerRepository creates a new instance of GORMLedgerRepository.
func NewGORMLedgerRepository(db *gorm.DB) *GORMLedgerRepository {
	return &GORMLedgerRepository{
		db: db,
	}
}

// TopUp appends a TOPUP ledger entry and increments the wallet balance in
// a single transaction.
func (r *GORMLedgerRepository) TopUp(userID string, amount float64) (float64, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entry := models.WalletTransaction{
			ID:     uuid.New().String(),
			UserID: userID,
			Amount: amount,
			Type:   models.TransactionTopUp,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return fmt.Errorf("failed to append ledger entry: %w", err)
		}
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
		if res.Error != nil {
			return fmt.Errorf("failed to credit wallet: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("user with ID %s not found for top-up", userID)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		return 0, fmt.Errorf("failed to read balance after top-up: %w", err)
	}
	return user.WalletBalance, nil
}

// ListByUser retrieves a user's ledger entries, newest first.
func (r *GORMLedgerRepository) ListByUser(userID string) ([]models.WalletTransaction, error) {
	var entries []models.WalletTransaction
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for user %s: %w", userID, err)
	}
	return entries, nil
}
