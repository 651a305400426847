package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/service"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
	"github.com/noah-isme/school-dashboard-api/pkg/response"
)

type reportService interface {
	Attendance(ctx context.Context, query dto.ReportQuery) (*models.AttendanceReport, error)
	Export(ctx context.Context, query dto.ReportQuery, format service.ExportFormat) (*service.ExportedReport, error)
}

// Report types accepted by the dispatch endpoint. Behavior and statistics
// reports are part of the API surface but not aggregated yet.
const (
	reportTypeAttendance = "attendance"
	reportTypeBehavior   = "behavior"
	reportTypeStatistics = "statistics"
)

// ReportHandler serves report aggregation and downloads.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Get godoc
// @Summary Aggregate a report over a date window
// @Tags Reports
// @Produce json
// @Param type path string true "Report type" Enums(attendance, behavior, statistics)
// @Param period query string false "Window" Enums(day, week, month)
// @Param class query string false "Class name"
// @Param section query string false "Section"
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.AttendanceReport
// @Failure 501 {object} errors.Error
// @Router /reports/{type} [get]
func (h *ReportHandler) Get(c *gin.Context) {
	switch c.Param("type") {
	case reportTypeAttendance:
	case reportTypeBehavior, reportTypeStatistics:
		response.Error(c, appErrors.ErrNotImplemented)
		return
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown report type"))
		return
	}

	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid report query"))
		return
	}
	report, err := h.service.Attendance(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// Export godoc
// @Summary Download the attendance report as PDF or CSV
// @Tags Reports
// @Produce application/pdf
// @Param format query string false "Download format" Enums(pdf, csv) default(pdf)
// @Param period query string false "Window" Enums(day, week, month)
// @Param class query string false "Class name"
// @Param section query string false "Section"
// @Success 200 {file} binary
// @Router /reports/attendance/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid report query"))
		return
	}
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportPDF)))

	exported, err := h.service.Export(c.Request.Context(), query, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exported.Filename+`"`)
	c.Data(http.StatusOK, exported.ContentType, exported.Content)
}
