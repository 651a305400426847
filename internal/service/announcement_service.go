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

// recentAnnouncementLimit caps the dashboard's recent-announcements view.
const recentAnnouncementLimit = 3

// AnnouncementService owns announcements and their listing order.
type AnnouncementService struct {
	announcements repository.AnnouncementRepository
	cache         *CacheService
	logger        *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(announcements repository.AnnouncementRepository, cache *CacheService, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{announcements: announcements, cache: cache, logger: logger}
}

// List returns all announcements newest first. The boolean reports whether
// the cache served it.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, bool, error) {
	if s.cache.Enabled() {
		var cached []models.Announcement
		if hit, err := s.cache.Get(ctx, cacheKeyAnnouncements, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, false, err
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKeyAnnouncements, announcements, 0); err != nil {
			s.logger.Warn("announcement cache write failed", zap.Error(err))
		}
	}
	return announcements, false, nil
}

// Recent returns the first entries of the sorted listing, at most three.
func (s *AnnouncementService) Recent(ctx context.Context) ([]models.Announcement, bool, error) {
	if s.cache.Enabled() {
		var cached []models.Announcement
		if hit, err := s.cache.Get(ctx, cacheKeyRecentAnnouncements, &cached); err == nil && hit {
			return cached, true, nil
		}
	}

	announcements, _, err := s.List(ctx)
	if err != nil {
		return nil, false, err
	}
	if len(announcements) > recentAnnouncementLimit {
		announcements = announcements[:recentAnnouncementLimit]
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKeyRecentAnnouncements, announcements, 0); err != nil {
			s.logger.Warn("announcement cache write failed", zap.Error(err))
		}
	}
	return announcements, false, nil
}

// Create validates dates, stores the announcement and invalidates the
// affected cache entries.
func (s *AnnouncementService) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid startDate")
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "invalid endDate")
		}
		endDate = &parsed
	}

	announcement := models.Announcement{
		Title:      req.Title,
		Content:    req.Content,
		StartDate:  startDate,
		EndDate:    endDate,
		Importance: req.Importance,
	}
	if err := s.announcements.Create(ctx, &announcement); err != nil {
		return nil, err
	}

	if s.cache.Enabled() {
		s.cache.Invalidate(ctx, cachePatternAnnouncements, cachePatternDashboard)
	}
	return &announcement, nil
}

// Delete removes the announcement if present. Deleting an absent id
// succeeds; the boolean reports whether anything was removed.
func (s *AnnouncementService) Delete(ctx context.Context, id int64) (bool, error) {
	removed, err := s.announcements.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed && s.cache.Enabled() {
		s.cache.Invalidate(ctx, cachePatternAnnouncements, cachePatternDashboard)
	}
	return removed, nil
}

// parseDate accepts calendar dates and RFC 3339 timestamps, which is what
// the dashboard's date inputs send.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
