package repository

import (
	"context"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// The store contracts are backend-agnostic: the memory implementation is
// the default, the postgres implementation is selected via STORAGE_DRIVER.
// Lookups that miss return pkg/errors.ErrNotFound from either backend.

// StudentRepository manages the student roster.
type StudentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Count(ctx context.Context) (int, error)
}

// AttendanceRepository manages per-day attendance records.
type AttendanceRepository interface {
	// Upsert writes the record for its (StudentID, Date) pair. An existing
	// record keeps its id and CreatedAt; only status and notes change.
	Upsert(ctx context.Context, record *models.AttendanceRecord) error
	ListByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error)
	ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.AttendanceRecord, error)
	Recent(ctx context.Context, limit int) ([]models.AttendanceRecord, error)
}

// BehaviorRepository manages violation records.
type BehaviorRepository interface {
	List(ctx context.Context) ([]models.BehaviorViolation, error)
	Create(ctx context.Context, violation *models.BehaviorViolation) error
	// Delete removes the violation and reports whether it was present.
	// Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	Recent(ctx context.Context, limit int) ([]models.BehaviorViolation, error)
}

// AnnouncementRepository manages announcements.
type AnnouncementRepository interface {
	// List returns announcements ordered by CreatedAt descending, ties
	// broken by id ascending.
	List(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository manages dashboard accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// ScheduleRepository serves the weekly timetable.
type ScheduleRepository interface {
	Get(ctx context.Context, className, section string) (*models.ClassSchedule, error)
}
