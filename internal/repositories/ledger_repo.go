package repositories

import "vibecart/internal/models"

// LedgerRepository defines the interface for the append-only wallet ledger.
type LedgerRepository interface {
	// TopUp atomically appends a TOPUP ledger entry and increments the
	// user's wallet balance by the same amount (both or neither), and
	// returns the new balance.
	TopUp(userID string, amount float64) (float64, error)
	ListByUser(userID string) ([]models.WalletTransaction, error)
}
