package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

const dateLayout = "2006-01-02"

// AttendanceService owns the daily roll call: the upsert rule for
// (studentId, date) pairs, the joined listing and the dashboard summary.
type AttendanceService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	cache      *CacheService
	logger     *zap.Logger
	now        func() time.Time
}

// NewAttendanceService constructs the service.
func NewAttendanceService(students repository.StudentRepository, attendance repository.AttendanceRepository, cache *CacheService, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		students:   students,
		attendance: attendance,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

// RollCall lists students matching the class/section filter, each joined
// with their attendance record for the requested date. Students without a
// record keep nil status — that is the unmarked state, not an error.
func (s *AttendanceService) RollCall(ctx context.Context, query dto.AttendanceListQuery) ([]models.RollCallEntry, error) {
	students, err := s.students.List(ctx, models.StudentFilter{ClassName: query.ClassName, Section: query.Section})
	if err != nil {
		return nil, err
	}

	entries := make([]models.RollCallEntry, 0, len(students))
	var byStudent map[int64]models.AttendanceRecord
	if query.Date != "" {
		records, err := s.attendance.ListByDate(ctx, query.Date)
		if err != nil {
			return nil, err
		}
		byStudent = make(map[int64]models.AttendanceRecord, len(records))
		for _, record := range records {
			byStudent[record.StudentID] = record
		}
	}

	for _, student := range students {
		entry := models.RollCallEntry{Student: student}
		if record, ok := byStudent[student.ID]; ok {
			status := record.Status
			entry.AttendanceStatus = &status
			if record.Notes != "" {
				notes := record.Notes
				entry.Notes = &notes
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Save upserts the attendance record for (studentId, date). The student
// must exist; nothing is written otherwise. An existing record for the pair
// keeps its id and CreatedAt, only status and notes change.
func (s *AttendanceService) Save(ctx context.Context, req dto.SaveAttendanceRequest) (*models.AttendanceRecord, error) {
	if err := validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}

	if _, err := s.students.FindByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	record := models.AttendanceRecord{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if err := s.attendance.Upsert(ctx, &record); err != nil {
		return nil, err
	}

	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, cachePatternDashboard)
	}
	return &record, nil
}

// Summary returns the dashboard headline for today. The boolean reports
// whether the cache served it.
func (s *AttendanceService) Summary(ctx context.Context) (*models.AttendanceSummary, bool, error) {
	if s.cache.Enabled() {
		var cached models.AttendanceSummary
		if hit, err := s.cache.Get(ctx, cacheKeyAttendanceSummary, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	total, err := s.students.Count(ctx)
	if err != nil {
		return nil, false, err
	}

	today := s.now().Format(dateLayout)
	records, err := s.attendance.ListByDate(ctx, today)
	if err != nil {
		return nil, false, err
	}

	summary := &models.AttendanceSummary{TotalStudents: total}
	for _, record := range records {
		switch record.Status {
		case models.AttendancePresent:
			summary.PresentCount++
		case models.AttendanceAbsent:
			summary.AbsentCount++
		case models.AttendanceLate:
			summary.LateCount++
		}
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKeyAttendanceSummary, summary, 0); err != nil {
			s.logger.Warn("summary cache write failed", zap.Error(err))
		}
	}
	return summary, false, nil
}
