package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// MemoryAnnouncementRepository keeps announcements in process memory.
type MemoryAnnouncementRepository struct {
	mu     sync.RWMutex
	byID   map[int64]models.Announcement
	nextID int64
	now    func() time.Time
}

// NewMemoryAnnouncementRepository constructs an empty announcement store.
func NewMemoryAnnouncementRepository() *MemoryAnnouncementRepository {
	return &MemoryAnnouncementRepository{
		byID:   make(map[int64]models.Announcement),
		nextID: 1,
		now:    time.Now,
	}
}

// List returns announcements newest first; equal timestamps order by id
// ascending for determinism.
func (r *MemoryAnnouncementRepository) List(_ context.Context) ([]models.Announcement, error) {
	r.mu.RLock()
	announcements := make([]models.Announcement, 0, len(r.byID))
	for _, announcement := range r.byID {
		announcements = append(announcements, announcement)
	}
	r.mu.RUnlock()

	sort.Slice(announcements, func(i, j int) bool {
		if announcements[i].CreatedAt.Equal(announcements[j].CreatedAt) {
			return announcements[i].ID < announcements[j].ID
		}
		return announcements[i].CreatedAt.After(announcements[j].CreatedAt)
	})
	return announcements, nil
}

// Create assigns the next id and stores the announcement.
func (r *MemoryAnnouncementRepository) Create(_ context.Context, announcement *models.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	announcement.ID = r.nextID
	r.nextID++
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = r.now().UTC()
	}
	r.byID[announcement.ID] = *announcement
	return nil
}

// Delete removes the announcement, reporting whether it existed.
func (r *MemoryAnnouncementRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}
