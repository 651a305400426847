package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// MemoryUserRepository keeps dashboard accounts in process memory.
type MemoryUserRepository struct {
	mu         sync.RWMutex
	byID       map[int64]models.User
	byUsername map[string]int64
	nextID     int64
}

// NewMemoryUserRepository constructs an empty account store.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:       make(map[int64]models.User),
		byUsername: make(map[string]int64),
		nextID:     1,
	}
}

// FindByUsername fetches an account by its unique username.
func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	user := r.byID[id]
	return &user, nil
}

// Create assigns the next id and stores the account.
func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = *user
	r.byUsername[user.Username] = user.ID
	return nil
}
