package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/middleware"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
	"github.com/noah-isme/school-dashboard-api/pkg/response"
)

type scheduleService interface {
	Get(ctx context.Context, query dto.ScheduleQuery) (*models.ClassSchedule, bool, error)
}

// ScheduleHandler serves the weekly timetable.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Get godoc
// @Summary Weekly timetable for a class/section
// @Tags Schedule
// @Produce json
// @Param class query string false "Class name"
// @Param section query string false "Section"
// @Success 200 {object} models.ClassSchedule
// @Router /schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	var query dto.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule query"))
		return
	}
	schedule, cacheHit, err := h.service.Get(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.MarkCache(c, cacheHit)
	response.OK(c, schedule)
}
