package repository

import (
	"context"
	"sync"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// MemoryStudentRepository keeps the roster in process memory. Handlers run
// on multiple goroutines, so every access goes through the mutex.
type MemoryStudentRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.Student
	order  []int64
	nextID int64
}

// NewMemoryStudentRepository constructs an empty roster.
func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{
		byID:   make(map[int64]models.Student),
		nextID: 1,
	}
}

// List returns students matching the filter in insertion order.
func (r *MemoryStudentRepository) List(_ context.Context, filter models.StudentFilter) ([]models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Student, 0, len(r.order))
	for _, id := range r.order {
		student := r.byID[id]
		if filter.Matches(student) {
			result = append(result, student)
		}
	}
	return result, nil
}

// FindByID fetches a student by id.
func (r *MemoryStudentRepository) FindByID(_ context.Context, id int64) (*models.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.byID[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return &student, nil
}

// Create assigns the next id and stores the student.
func (r *MemoryStudentRepository) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	student.ID = r.nextID
	r.nextID++
	r.byID[student.ID] = *student
	r.order = append(r.order, student.ID)
	return nil
}

// Count returns the current roster size.
func (r *MemoryStudentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
