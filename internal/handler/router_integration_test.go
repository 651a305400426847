package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	"github.com/noah-isme/school-dashboard-api/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := repository.NewMemoryStore(repository.DefaultSeed(time.Now()))
	require.NoError(t, err)

	cache := service.NewCacheService(nil, nil, 0, nil)
	attendanceSvc := service.NewAttendanceService(store.Students, store.Attendance, cache, nil)
	behaviorSvc := service.NewBehaviorService(store.Students, store.Behavior, cache)
	announcementSvc := service.NewAnnouncementService(store.Announcements, cache, nil)
	scheduleSvc := service.NewScheduleService(store.Schedule, cache, nil)
	reportSvc := service.NewReportService(store.Students, store.Attendance, nil, nil)
	authSvc := service.NewAuthService(store.Users, "test_secret", time.Hour)
	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Summaries:     attendanceSvc,
		Announcements: announcementSvc,
		Students:      store.Students,
		Attendance:    store.Attendance,
		Behavior:      store.Behavior,
		Cache:         cache,
	})

	r := gin.New()
	Register(r, "/api", Handlers{
		Dashboard:    NewDashboardHandler(dashboardSvc),
		Student:      NewStudentHandler(service.NewStudentService(store.Students)),
		Attendance:   NewAttendanceHandler(attendanceSvc),
		Behavior:     NewBehaviorHandler(behaviorSvc),
		Announcement: NewAnnouncementHandler(announcementSvc),
		Schedule:     NewScheduleHandler(scheduleSvc),
		Report:       NewReportHandler(reportSvc),
		Auth:         NewAuthHandler(authSvc),
	})
	return r
}

func TestRouterStudentRoster(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/students", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var students []models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	assert.Len(t, students, 5)
}

func TestRouterAttendanceFlow(t *testing.T) {
	r := newTestRouter(t)
	today := time.Now().Format("2006-01-02")

	body, _ := json.Marshal(map[string]interface{}{
		"studentId": 1,
		"date":      today,
		"status":    "late",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/attendance", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/dashboard/attendance-summary", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.AttendanceSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 5, summary.TotalStudents)
	assert.Equal(t, 1, summary.LateCount)
}

func TestRouterBehaviorDeleteIdempotent(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"studentId":     2,
		"violationType": "شغب",
		"description":   "إزعاج داخل الفصل",
		"date":          "2025-03-10",
		"severity":      "low",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/behavior", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var violation models.BehaviorViolation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &violation))
	assert.Equal(t, "خالد عبدالله السالم", violation.StudentName)

	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		req, _ = http.NewRequest(http.MethodDelete, "/api/behavior/1", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRouterReportDispatch(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/reports/attendance", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/reports/behavior", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotImplemented, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/reports/grades", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouterReportExportRoute(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/reports/attendance/export?format=csv", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
}

func TestRouterSchedule(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/schedule?class=%D8%A7%D9%84%D8%AB%D8%A7%D9%86%D9%8A&section=%D8%A8", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var schedule models.ClassSchedule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	assert.Equal(t, "الثاني", schedule.ClassName)
	assert.Equal(t, "ب", schedule.Section)
	assert.NotEmpty(t, schedule.Lessons)
}

func TestRouterAnnouncementRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"title":      "إعلان جديد",
		"content":    "محتوى الإعلان",
		"startDate":  "2025-03-15",
		"endDate":    nil,
		"importance": "important",
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/announcements", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Announcement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Nil(t, created.EndDate)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/announcements", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Announcement
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 3)
}
