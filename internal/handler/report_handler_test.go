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

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

type reportServiceMock struct {
	report     *models.AttendanceReport
	reportErr  error
	exported   *service.ExportedReport
	exportErr  error
	lastQuery  dto.ReportQuery
	lastFormat service.ExportFormat
	called     bool
}

func (m *reportServiceMock) Attendance(ctx context.Context, query dto.ReportQuery) (*models.AttendanceReport, error) {
	m.called = true
	m.lastQuery = query
	return m.report, m.reportErr
}

func (m *reportServiceMock) Export(ctx context.Context, query dto.ReportQuery, format service.ExportFormat) (*service.ExportedReport, error) {
	m.lastQuery = query
	m.lastFormat = format
	return m.exported, m.exportErr
}

func reportContext(t *testing.T, target, reportType string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	if reportType != "" {
		c.Params = gin.Params{{Key: "type", Value: reportType}}
	}
	return c, w
}

func TestReportHandlerAttendance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &reportServiceMock{
		report: &models.AttendanceReport{TotalStudents: 5, PresentCount: 3, Date: "2025-03-10"},
	}
	handler := NewReportHandler(mockSvc)

	c, w := reportContext(t, "/reports/attendance?period=week", "attendance")
	handler.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.called)
	assert.Equal(t, models.PeriodWeek, mockSvc.lastQuery.Period)

	var report models.AttendanceReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 5, report.TotalStudents)
}

func TestReportHandlerNotImplementedTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for _, reportType := range []string{"behavior", "statistics"} {
		mockSvc := &reportServiceMock{}
		handler := NewReportHandler(mockSvc)

		c, w := reportContext(t, "/reports/"+reportType, reportType)
		handler.Get(c)

		require.Equal(t, http.StatusNotImplemented, w.Code)
		assert.False(t, mockSvc.called)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, appErrors.ErrNotImplemented.Code, body["code"])
	}
}

func TestReportHandlerUnknownType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &reportServiceMock{}
	handler := NewReportHandler(mockSvc)

	c, w := reportContext(t, "/reports/grades", "grades")
	handler.Get(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.called)
}

func TestReportHandlerInvalidPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&reportServiceMock{})

	c, w := reportContext(t, "/reports/attendance?period=year", "attendance")
	handler.Get(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandlerExportDefaultsToPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &reportServiceMock{
		exported: &service.ExportedReport{
			Filename:    "attendance-report-x.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.3"),
		},
	}
	handler := NewReportHandler(mockSvc)

	c, w := reportContext(t, "/reports/attendance/export", "")
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.ExportPDF, mockSvc.lastFormat)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendance-report-x.pdf")
}

func TestReportHandlerExportCSVFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &reportServiceMock{
		exported: &service.ExportedReport{
			Filename:    "attendance-report-x.csv",
			ContentType: "text/csv",
			Content:     []byte("a,b\n"),
		},
	}
	handler := NewReportHandler(mockSvc)

	c, w := reportContext(t, "/reports/attendance/export?format=csv", "")
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.ExportCSV, mockSvc.lastFormat)
}
