package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// MemoryStore bundles the in-memory repositories behind the shared
// contracts. Construct one per process — or per test, which is the point of
// explicit seeding over package-level state.
type MemoryStore struct {
	Students      *MemoryStudentRepository
	Attendance    *MemoryAttendanceRepository
	Behavior      *MemoryBehaviorRepository
	Announcements *MemoryAnnouncementRepository
	Users         *MemoryUserRepository
	Schedule      *StaticScheduleRepository
}

// NewMemoryStore builds the store and loads the provided seed. A zero Seed
// yields an empty store with the default timetable.
func NewMemoryStore(seed Seed) (*MemoryStore, error) {
	schedule := seed.Schedule
	if len(schedule.Days) == 0 {
		schedule = DefaultSchedule()
	}

	store := &MemoryStore{
		Students:      NewMemoryStudentRepository(),
		Attendance:    NewMemoryAttendanceRepository(),
		Behavior:      NewMemoryBehaviorRepository(),
		Announcements: NewMemoryAnnouncementRepository(),
		Users:         NewMemoryUserRepository(),
		Schedule:      NewStaticScheduleRepository(schedule),
	}

	ctx := context.Background()
	for i := range seed.Students {
		student := seed.Students[i]
		if err := store.Students.Create(ctx, &student); err != nil {
			return nil, fmt.Errorf("seed student %q: %w", student.Name, err)
		}
	}
	for i := range seed.Announcements {
		announcement := seed.Announcements[i]
		if err := store.Announcements.Create(ctx, &announcement); err != nil {
			return nil, fmt.Errorf("seed announcement %q: %w", announcement.Title, err)
		}
	}
	for _, cred := range seed.Users {
		hash, err := HashPassword(cred.Password)
		if err != nil {
			return nil, fmt.Errorf("seed user %q: %w", cred.Username, err)
		}
		user := models.User{Username: cred.Username, PasswordHash: hash}
		if err := store.Users.Create(ctx, &user); err != nil {
			return nil, fmt.Errorf("seed user %q: %w", cred.Username, err)
		}
	}

	return store, nil
}
