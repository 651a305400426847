package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
	"github.com/noah-isme/school-dashboard-api/pkg/response"
)

type attendanceService interface {
	RollCall(ctx context.Context, query dto.AttendanceListQuery) ([]models.RollCallEntry, error)
	Save(ctx context.Context, req dto.SaveAttendanceRequest) (*models.AttendanceRecord, error)
}

// AttendanceHandler serves the roll call listing and the save endpoint.
type AttendanceHandler struct {
	service attendanceService
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service attendanceService) *AttendanceHandler {
	return &AttendanceHandler{service: service}
}

// List godoc
// @Summary List students joined with their attendance for a date
// @Tags Attendance
// @Produce json
// @Param class query string false "Class name"
// @Param section query string false "Section"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} models.RollCallEntry
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	var query dto.AttendanceListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance query"))
		return
	}
	entries, err := h.service.RollCall(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

// Save godoc
// @Summary Save a student's attendance for a date
// @Tags Attendance
// @Accept json
// @Produce json
// @Param payload body dto.SaveAttendanceRequest true "Attendance record"
// @Success 201 {object} models.AttendanceRecord
// @Router /attendance [post]
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req dto.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid attendance payload"))
		return
	}
	record, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}
