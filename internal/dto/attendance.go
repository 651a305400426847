package dto

import "github.com/noah-isme/school-dashboard-api/internal/models"

// SaveAttendanceRequest is the POST /attendance body. A second save for the
// same (studentId, date) pair overwrites the earlier record.
type SaveAttendanceRequest struct {
	StudentID int64                   `json:"studentId" binding:"required,gt=0"`
	Date      string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" binding:"required,oneof=present absent late excused"`
	Notes     string                  `json:"notes"`
}

// AttendanceListQuery filters the roll-call listing. All fields optional.
type AttendanceListQuery struct {
	ClassName string `form:"class"`
	Section   string `form:"section"`
	Date      string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}
