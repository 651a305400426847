package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// MemoryBehaviorRepository keeps violation records in process memory.
type MemoryBehaviorRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.BehaviorViolation
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryBehaviorRepository constructs an empty violation store.
func NewMemoryBehaviorRepository() *MemoryBehaviorRepository {
	return &MemoryBehaviorRepository{
		byID:   make(map[int64]models.BehaviorViolation),
		nextID: 1,
		now:    time.Now,
	}
}

// List returns all violations in insertion order.
func (r *MemoryBehaviorRepository) List(_ context.Context) ([]models.BehaviorViolation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.BehaviorViolation, 0, len(r.order))
	for _, id := range r.order {
		if violation, ok := r.byID[id]; ok {
			result = append(result, violation)
		}
	}
	return result, nil
}

// Create assigns the next id and stores the violation.
func (r *MemoryBehaviorRepository) Create(_ context.Context, violation *models.BehaviorViolation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	violation.ID = r.nextID
	r.nextID++
	if violation.CreatedAt.IsZero() {
		violation.CreatedAt = r.now().UTC()
	}
	r.byID[violation.ID] = *violation
	r.order = append(r.order, violation.ID)
	return nil
}

// Delete removes the violation, reporting whether it existed. Ids are never
// reused after deletion.
func (r *MemoryBehaviorRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// Recent returns up to limit violations, newest first.
func (r *MemoryBehaviorRepository) Recent(_ context.Context, limit int) ([]models.BehaviorViolation, error) {
	r.mu.RLock()
	violations := make([]models.BehaviorViolation, 0, len(r.byID))
	for _, violation := range r.byID {
		violations = append(violations, violation)
	}
	r.mu.RUnlock()

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].CreatedAt.Equal(violations[j].CreatedAt) {
			return violations[i].ID > violations[j].ID
		}
		return violations[i].CreatedAt.After(violations[j].CreatedAt)
	})
	if limit > 0 && len(violations) > limit {
		violations = violations[:limit]
	}
	return violations, nil
}
