package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 10

type attendanceSummaryProvider interface {
	Summary(ctx context.Context) (*models.AttendanceSummary, bool, error)
}

type recentAnnouncementProvider interface {
	Recent(ctx context.Context) ([]models.Announcement, bool, error)
}

// DashboardService composes the dashboard payloads. The activity feed is a
// recency-ordered union of attendance and violation events.
type DashboardService struct {
	summaries     attendanceSummaryProvider
	announcements recentAnnouncementProvider
	students      repository.StudentRepository
	attendance    repository.AttendanceRepository
	behavior      repository.BehaviorRepository
	cache         *CacheService
	logger        *zap.Logger
}

// DashboardServiceParams groups constructor dependencies.
type DashboardServiceParams struct {
	Summaries     attendanceSummaryProvider
	Announcements recentAnnouncementProvider
	Students      repository.StudentRepository
	Attendance    repository.AttendanceRepository
	Behavior      repository.BehaviorRepository
	Cache         *CacheService
	Logger        *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(params DashboardServiceParams) *DashboardService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		summaries:     params.Summaries,
		announcements: params.Announcements,
		students:      params.Students,
		attendance:    params.Attendance,
		behavior:      params.Behavior,
		cache:         params.Cache,
		logger:        logger,
	}
}

// AttendanceSummary returns today's headline counts.
func (s *DashboardService) AttendanceSummary(ctx context.Context) (*models.AttendanceSummary, bool, error) {
	return s.summaries.Summary(ctx)
}

// RecentAnnouncements returns the newest announcements, at most three.
func (s *DashboardService) RecentAnnouncements(ctx context.Context) ([]models.Announcement, bool, error) {
	return s.announcements.Recent(ctx)
}

// RecentActivities returns the newest attendance and violation events
// merged into one feed. The boolean reports whether the cache served it.
func (s *DashboardService) RecentActivities(ctx context.Context) ([]models.RecentActivity, bool, error) {
	if s.cache.Enabled() {
		var cached []models.RecentActivity
		if hit, err := s.cache.Get(ctx, cacheKeyRecentActivities, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	records, err := s.attendance.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, false, err
	}
	violations, err := s.behavior.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, false, err
	}

	activities := make([]models.RecentActivity, 0, len(records)+len(violations))
	for _, record := range records {
		name := ""
		if student, err := s.students.FindByID(ctx, record.StudentID); err == nil {
			name = student.Name
		}
		activityType, description := attendanceActivity(record.Status)
		activities = append(activities, models.RecentActivity{
			Type:        activityType,
			Description: description,
			StudentName: name,
			Time:        record.CreatedAt.Format("15:04"),
			CreatedAt:   record.CreatedAt,
		})
	}
	for _, violation := range violations {
		activities = append(activities, models.RecentActivity{
			Type:        models.ActivityViolation,
			Description: "تسجيل مخالفة",
			StudentName: violation.StudentName,
			Time:        violation.CreatedAt.Format("15:04"),
			CreatedAt:   violation.CreatedAt,
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > recentActivityLimit {
		activities = activities[:recentActivityLimit]
	}
	for i := range activities {
		activities[i].ID = int64(i + 1)
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKeyRecentActivities, activities, 0); err != nil {
			s.logger.Warn("activity cache write failed", zap.Error(err))
		}
	}
	return activities, false, nil
}

func attendanceActivity(status models.AttendanceStatus) (models.ActivityType, string) {
	switch status {
	case models.AttendanceLate:
		return models.ActivityLate, "تسجيل تأخر"
	case models.AttendanceAbsent:
		return models.ActivityAbsence, "تسجيل غياب"
	case models.AttendanceExcused:
		return models.ActivityExcused, "تسجيل استئذان"
	default:
		return models.ActivityAttendance, "تسجيل حضور"
	}
}
