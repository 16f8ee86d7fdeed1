package repositories

import (
	"sort"
	"sync"
	"time"
	"vibecart/internal/models"

	"github.com/google/uuid"
)

// MockLedgerRepository is an in-memory implementation of LedgerRepository.
// It shares the user repository so balance and ledger move together.
type MockLedgerRepository struct {
	entries []models.WalletTransaction
	users   *MockUserRepository
	mu      sync.Mutex
}

// NewMockLedgerRepository creates a new instance of MockLedgerRepository.
func NewMockLedgerRepository(users *MockUserRepository) *MockLedgerRepository {
	return &MockLedgerRepository{
		users: users,
	}
}

// TopUp appends a TOPUP entry and credits the wallet. The balance write
// happens first so a missing user leaves the ledger untouched.
func (r *MockLedgerRepository) TopUp(userID string, amount float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newBalance, err := r.users.adjustBalance(userID, amount)
	if err != nil {
		return 0, err
	}
	r.entries = append(r.entries, models.WalletTransaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Amount:    amount,
		Type:      models.TransactionTopUp,
		CreatedAt: time.Now(),
	})
	return newBalance, nil
}

// append records a ledger entry without touching the balance. Only the
// in-memory checkout repository calls this, after its own debit.
func (r *MockLedgerRepository) append(entry models.WalletTransaction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, entry)
}

// ListByUser retrieves a user's ledger entries, newest first.
func (r *MockLedgerRepository) ListByUser(userID string) ([]models.WalletTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var list []models.WalletTransaction
	for _, entry := range r.entries {
		if entry.UserID == userID {
			list = append(list, entry)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}
