package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

type dashboardServiceMock struct {
	summary       *models.AttendanceSummary
	summaryHit    bool
	summaryErr    error
	activities    []models.RecentActivity
	activitiesErr error
	announcements []models.Announcement
}

func (m *dashboardServiceMock) AttendanceSummary(ctx context.Context) (*models.AttendanceSummary, bool, error) {
	return m.summary, m.summaryHit, m.summaryErr
}

func (m *dashboardServiceMock) RecentActivities(ctx context.Context) ([]models.RecentActivity, bool, error) {
	return m.activities, false, m.activitiesErr
}

func (m *dashboardServiceMock) RecentAnnouncements(ctx context.Context) ([]models.Announcement, bool, error) {
	return m.announcements, false, nil
}

func dashboardTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func TestDashboardHandlerAttendanceSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{
		summary:    &models.AttendanceSummary{TotalStudents: 5, PresentCount: 4, AbsentCount: 1},
		summaryHit: true,
	}
	handler := NewDashboardHandler(mockSvc)

	c, w := dashboardTestContext(t, "/dashboard/attendance-summary")
	handler.AttendanceSummary(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))

	var summary models.AttendanceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 5, summary.TotalStudents)
	assert.Equal(t, 4, summary.PresentCount)
}

func TestDashboardHandlerRecentActivities(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{
		activities: []models.RecentActivity{
			{ID: 1, Type: models.ActivityViolation, Description: "تسجيل مخالفة", StudentName: "فهد سعد الغامدي"},
		},
	}
	handler := NewDashboardHandler(mockSvc)

	c, w := dashboardTestContext(t, "/dashboard/recent-activities")
	handler.RecentActivities(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	var activities []models.RecentActivity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityViolation, activities[0].Type)
}

func TestDashboardHandlerSummaryError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &dashboardServiceMock{summaryErr: appErrors.ErrInternal}
	handler := NewDashboardHandler(mockSvc)

	c, w := dashboardTestContext(t, "/dashboard/attendance-summary")
	handler.AttendanceSummary(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
