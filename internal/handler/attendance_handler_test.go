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
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

type attendanceServiceMock struct {
	rollCallResp []models.RollCallEntry
	rollCallErr  error
	saveResp     *models.AttendanceRecord
	saveErr      error
	lastQuery    dto.AttendanceListQuery
	lastSave     dto.SaveAttendanceRequest
	saveCalled   bool
}

func (m *attendanceServiceMock) RollCall(ctx context.Context, query dto.AttendanceListQuery) ([]models.RollCallEntry, error) {
	m.lastQuery = query
	return m.rollCallResp, m.rollCallErr
}

func (m *attendanceServiceMock) Save(ctx context.Context, req dto.SaveAttendanceRequest) (*models.AttendanceRecord, error) {
	m.saveCalled = true
	m.lastSave = req
	return m.saveResp, m.saveErr
}

func TestAttendanceHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{
		rollCallResp: []models.RollCallEntry{{Student: models.Student{ID: 1, Name: "أحمد محمد العمري"}}},
	}
	handler := NewAttendanceHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/attendance?class=%D8%A7%D9%84%D8%AB%D8%A7%D9%84%D8%AB&date=2025-03-10", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "الثالث", mockSvc.lastQuery.ClassName)
	assert.Equal(t, "2025-03-10", mockSvc.lastQuery.Date)
}

func TestAttendanceHandlerListInvalidDate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAttendanceHandler(&attendanceServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/attendance?date=10-03-2025", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttendanceHandlerSave(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{
		saveResp: &models.AttendanceRecord{ID: 1, StudentID: 1, Date: "2025-03-10", Status: models.AttendanceLate},
	}
	handler := NewAttendanceHandler(mockSvc)

	payload, _ := json.Marshal(dto.SaveAttendanceRequest{StudentID: 1, Date: "2025-03-10", Status: models.AttendanceLate})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Save(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.saveCalled)

	var record models.AttendanceRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, int64(1), record.ID)
	assert.Equal(t, models.AttendanceLate, record.Status)
}

func TestAttendanceHandlerSaveInvalidStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{}
	handler := NewAttendanceHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(`{"studentId":1,"date":"2025-03-10","status":"sleeping"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Save(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.saveCalled)
}

func TestAttendanceHandlerSaveUnknownStudent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &attendanceServiceMock{
		saveErr: appErrors.Clone(appErrors.ErrNotFound, "student not found"),
	}
	handler := NewAttendanceHandler(mockSvc)

	payload, _ := json.Marshal(dto.SaveAttendanceRequest{StudentID: 99, Date: "2025-03-10", Status: models.AttendancePresent})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/attendance", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Save(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, appErrors.ErrNotFound.Code, body["code"])
}
