package dto

import "github.com/noah-isme/school-dashboard-api/internal/models"

// ReportQuery filters report aggregation. When Period is set and StartDate
// is not, the service computes the canonical window for the period.
type ReportQuery struct {
	ClassName string              `form:"class"`
	Section   string              `form:"section"`
	StartDate string              `form:"start" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string              `form:"end" binding:"omitempty,datetime=2006-01-02"`
	Period    models.ReportPeriod `form:"period" binding:"omitempty,oneof=day week month"`
}

// ScheduleQuery selects the timetable to return.
type ScheduleQuery struct {
	ClassName string `form:"class"`
	Section   string `form:"section"`
}
