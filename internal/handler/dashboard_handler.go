package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-dashboard-api/internal/middleware"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/pkg/response"
)

type dashboardService interface {
	AttendanceSummary(ctx context.Context) (*models.AttendanceSummary, bool, error)
	RecentActivities(ctx context.Context) ([]models.RecentActivity, bool, error)
	RecentAnnouncements(ctx context.Context) ([]models.Announcement, bool, error)
}

// DashboardHandler wires the dashboard service to HTTP endpoints.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(service dashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// AttendanceSummary godoc
// @Summary Today's attendance headline counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.AttendanceSummary
// @Router /dashboard/attendance-summary [get]
func (h *DashboardHandler) AttendanceSummary(c *gin.Context) {
	summary, cacheHit, err := h.service.AttendanceSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.MarkCache(c, cacheHit)
	response.OK(c, summary)
}

// RecentActivities godoc
// @Summary Latest attendance and violation events
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.RecentActivity
// @Router /dashboard/recent-activities [get]
func (h *DashboardHandler) RecentActivities(c *gin.Context) {
	activities, cacheHit, err := h.service.RecentActivities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.MarkCache(c, cacheHit)
	response.OK(c, activities)
}

// RecentAnnouncements godoc
// @Summary Newest announcements, at most three
// @Tags Dashboard
// @Produce json
// @Success 200 {array} models.Announcement
// @Router /dashboard/recent-announcements [get]
func (h *DashboardHandler) RecentAnnouncements(c *gin.Context) {
	announcements, cacheHit, err := h.service.RecentAnnouncements(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.MarkCache(c, cacheHit)
	response.OK(c, announcements)
}
