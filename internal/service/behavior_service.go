package service

import (
	"context"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// BehaviorService owns violation records.
type BehaviorService struct {
	students repository.StudentRepository
	behavior repository.BehaviorRepository
	cache    *CacheService
}

// NewBehaviorService constructs the service.
func NewBehaviorService(students repository.StudentRepository, behavior repository.BehaviorRepository, cache *CacheService) *BehaviorService {
	return &BehaviorService{students: students, behavior: behavior, cache: cache}
}

// List returns all violations in insertion order.
func (s *BehaviorService) List(ctx context.Context) ([]models.BehaviorViolation, error) {
	return s.behavior.List(ctx)
}

// Create records a violation. The student must exist at recording time;
// their name is stamped onto the record so it survives later roster edits.
func (s *BehaviorService) Create(ctx context.Context, req dto.CreateViolationRequest) (*models.BehaviorViolation, error) {
	if err := validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid violation payload")
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	violation := models.BehaviorViolation{
		StudentID:     req.StudentID,
		StudentName:   student.Name,
		ViolationType: req.ViolationType,
		Description:   req.Description,
		Date:          req.Date,
		LessonPeriod:  req.LessonPeriod,
		Severity:      req.Severity,
	}
	if err := s.behavior.Create(ctx, &violation); err != nil {
		return nil, err
	}

	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, cachePatternDashboard)
	}
	return &violation, nil
}

// Delete removes the violation if present. Deleting an absent id succeeds;
// the boolean reports whether anything was removed.
func (s *BehaviorService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.behavior.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed && s.cache.Enabled() {
		s.cache.Invalidate(ctx, cachePatternDashboard)
	}
	return removed, nil
}
