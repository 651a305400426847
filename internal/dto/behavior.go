package dto

import "github.com/noah-isme/school-dashboard-api/internal/models"

// CreateViolationRequest is the POST /behavior body. The student must exist;
// their name is stamped onto the stored violation.
type CreateViolationRequest struct {
	StudentID     int64                    `json:"studentId" binding:"required,gt=0"`
	ViolationType string                   `json:"violationType" binding:"required"`
	Description   string                   `json:"description" binding:"required"`
	Date          string                   `json:"date" binding:"required,datetime=2006-01-02"`
	LessonPeriod  string                   `json:"lessonPeriod"`
	Severity      models.ViolationSeverity `json:"severity" binding:"required,oneof=low medium high"`
}
