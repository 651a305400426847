package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

type attendanceKey struct {
	studentID int64
	date      string
}

// MemoryAttendanceRepository stores attendance records keyed by their
// (studentId, date) pair.
type MemoryAttendanceRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.AttendanceRecord
	byPair map[attendanceKey]int64
	order  []int64
	nextID int64
	now    func() time.Time
}

// NewMemoryAttendanceRepository constructs an empty attendance store.
func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{
		byID:   make(map[int64]models.AttendanceRecord),
		byPair: make(map[attendanceKey]int64),
		nextID: 1,
		now:    time.Now,
	}
}

// Upsert writes the record for its pair. The check-then-write runs under
// the write lock so concurrent saves for the same pair cannot duplicate.
// Overwrites keep the original id and CreatedAt.
func (r *MemoryAttendanceRepository) Upsert(_ context.Context, record *models.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey{studentID: record.StudentID, date: record.Date}
	if id, ok := r.byPair[key]; ok {
		existing := r.byID[id]
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		r.byID[id] = *record
		return nil
	}

	record.ID = r.nextID
	r.nextID++
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now().UTC()
	}
	r.byID[record.ID] = *record
	r.byPair[key] = record.ID
	r.order = append(r.order, record.ID)
	return nil
}

// ListByDate returns all records for one calendar date.
func (r *MemoryAttendanceRepository) ListByDate(_ context.Context, date string) ([]models.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.AttendanceRecord
	for _, id := range r.order {
		record := r.byID[id]
		if record.Date == date {
			result = append(result, record)
		}
	}
	return result, nil
}

// ListByDateRange returns records with startDate <= date <= endDate. Dates
// are ISO strings, so lexical comparison is chronological.
func (r *MemoryAttendanceRepository) ListByDateRange(_ context.Context, startDate, endDate string) ([]models.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.AttendanceRecord
	for _, id := range r.order {
		record := r.byID[id]
		if (startDate == "" || record.Date >= startDate) && (endDate == "" || record.Date <= endDate) {
			result = append(result, record)
		}
	}
	return result, nil
}

// Recent returns up to limit records, newest first.
func (r *MemoryAttendanceRepository) Recent(_ context.Context, limit int) ([]models.AttendanceRecord, error) {
	r.mu.RLock()
	records := make([]models.AttendanceRecord, 0, len(r.byID))
	for _, record := range r.byID {
		records = append(records, record)
	}
	r.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
