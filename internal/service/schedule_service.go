package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
)

// ScheduleService serves the weekly timetable. The timetable itself is
// static seed content; see the schedule repository.
type ScheduleService struct {
	schedule repository.ScheduleRepository
	cache    *CacheService
	logger   *zap.Logger
}

// NewScheduleService constructs the service.
func NewScheduleService(schedule repository.ScheduleRepository, cache *CacheService, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{schedule: schedule, cache: cache, logger: logger}
}

// Get returns the timetable for the requested class/section. The boolean
// reports whether the cache served it.
func (s *ScheduleService) Get(ctx context.Context, query dto.ScheduleQuery) (*models.ClassSchedule, bool, error) {
	key := cacheKeySchedule(query.ClassName, query.Section)
	if s.cache.Enabled() {
		var cached models.ClassSchedule
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	schedule, err := s.schedule.Get(ctx, query.ClassName, query.Section)
	if err != nil {
		return nil, false, err
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, key, schedule, 0); err != nil {
			s.logger.Warn("schedule cache write failed", zap.Error(err))
		}
	}
	return schedule, false, nil
}
