package models

import "time"

// Wallet transaction types.
const (
	TransactionPurchase = "PURCHASE"
	TransactionTopUp    = "TOPUP"
)

// WalletTransaction is an append-only ledger entry for a wallet balance
// change. Amount is negative for purchases and positive for top-ups; the
// sum of a user's entries always equals their current wallet balance.
type WalletTransaction struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Amount    float64   `json:"amount"`
	Type      string    `json:"type" gorm:"type:varchar(16)"`
	CreatedAt time.Time `json:"created_at"`
}
