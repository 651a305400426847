package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
	"github.com/noah-isme/school-dashboard-api/pkg/response"
)

type behaviorService interface {
	List(ctx context.Context) ([]models.BehaviorViolation, error)
	Create(ctx context.Context, req dto.CreateViolationRequest) (*models.BehaviorViolation, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BehaviorHandler serves violation records.
type BehaviorHandler struct {
	service behaviorService
}

// NewBehaviorHandler constructs the handler.
func NewBehaviorHandler(service behaviorService) *BehaviorHandler {
	return &BehaviorHandler{service: service}
}

// List godoc
// @Summary List all behavior violations
// @Tags Behavior
// @Produce json
// @Success 200 {array} models.BehaviorViolation
// @Router /behavior [get]
func (h *BehaviorHandler) List(c *gin.Context) {
	violations, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, violations)
}

// Create godoc
// @Summary Record a behavior violation
// @Tags Behavior
// @Accept json
// @Produce json
// @Param payload body dto.CreateViolationRequest true "Violation"
// @Success 201 {object} models.BehaviorViolation
// @Router /behavior [post]
func (h *BehaviorHandler) Create(c *gin.Context) {
	var req dto.CreateViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid violation payload"))
		return
	}
	violation, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, violation)
}

// Delete godoc
// @Summary Delete a behavior violation
// @Tags Behavior
// @Param id path int true "Violation id"
// @Success 204
// @Router /behavior/{id} [delete]
func (h *BehaviorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid violation id"))
		return
	}
	if _, err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
