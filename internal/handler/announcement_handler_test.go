package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
)

type announcementServiceMock struct {
	listResp     []models.Announcement
	listHit      bool
	listErr      error
	createResp   *models.Announcement
	createErr    error
	deleteResult bool
	deleteErr    error
	deletedID    int64
	deleteCalled bool
}

func (m *announcementServiceMock) List(ctx context.Context) ([]models.Announcement, bool, error) {
	return m.listResp, m.listHit, m.listErr
}

func (m *announcementServiceMock) Create(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	return m.createResp, m.createErr
}

func (m *announcementServiceMock) Delete(ctx context.Context, id int64) (bool, error) {
	m.deleteCalled = true
	m.deletedID = id
	return m.deleteResult, m.deleteErr
}

func TestAnnouncementHandlerListCacheHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{
		listResp: []models.Announcement{{ID: 1, Title: "اجتماع أولياء الأمور"}},
		listHit:  true,
	}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/announcements", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}

func TestAnnouncementHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{
		createResp: &models.Announcement{ID: 3, Title: "رحلة مدرسية"},
	}
	handler := NewAnnouncementHandler(mockSvc)

	payload, _ := json.Marshal(dto.CreateAnnouncementRequest{
		Title:      "رحلة مدرسية",
		Content:    "رحلة إلى المتحف الوطني.",
		StartDate:  "2025-03-15",
		Importance: models.ImportanceNormal,
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestAnnouncementHandlerCreateInvalidImportance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAnnouncementHandler(&announcementServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/announcements", bytes.NewBufferString(`{"title":"t","content":"c","startDate":"2025-03-15","importance":"critical"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnnouncementHandlerDeleteAlways204(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, existed := range []bool{true, false} {
		mockSvc := &announcementServiceMock{deleteResult: existed}
		handler := NewAnnouncementHandler(mockSvc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req, _ := http.NewRequest(http.MethodDelete, "/announcements/5", nil)
		c.Request = req
		c.Params = gin.Params{{Key: "id", Value: "5"}}

		handler.Delete(c)
		c.Writer.WriteHeaderNow()
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, mockSvc.deleteCalled)
		assert.Equal(t, int64(5), mockSvc.deletedID)
	}
}

func TestAnnouncementHandlerDeleteInvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &announcementServiceMock{}
	handler := NewAnnouncementHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/announcements/abc", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Delete(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.deleteCalled)
}
