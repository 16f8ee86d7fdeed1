package repositories

import (
	"fmt"
	"sort"
	"sync"
	"time"
	"vibecart/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	mu    sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]models.User),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("user with email %s already exists", user.Email)
		}
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns a user by their email.
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s not found", id)
	}
	return &user, nil
}

// ListOthers returns every user except excludeID, newest first.
func (r *MockUserRepository) ListOthers(excludeID string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userList := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		if user.ID != excludeID {
			userList = append(userList, user)
		}
	}
	sort.Slice(userList, func(i, j int) bool {
		return userList[i].CreatedAt.After(userList[j].CreatedAt)
	})
	return userList, nil
}

// Delete removes a user by their ID.
func (r *MockUserRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user with ID %s not found for deletion", id)
	}
	delete(r.users, id)
	return nil
}

// adjustBalance applies a signed delta to the user's wallet with a floor
// check. Used by the in-memory ledger and checkout repositories; the
// caller must hold no lock on r.
func (r *MockUserRepository) adjustBalance(id string, delta float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return 0, fmt.Errorf("user with ID %s not found", id)
	}
	if user.WalletBalance+delta < 0 {
		return 0, fmt.Errorf("wallet debit refused for user %s: insufficient balance", id)
	}
	user.WalletBalance += delta
	r.users[id] = user
	return user.WalletBalance, nil
}
