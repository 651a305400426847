package models

// ReportPeriod selects a canonical date window for report aggregation.
type ReportPeriod string

const (
	PeriodDay   ReportPeriod = "day"
	PeriodWeek  ReportPeriod = "week"
	PeriodMonth ReportPeriod = "month"
)

// Valid reports whether the period is one of the known windows.
func (p ReportPeriod) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}
	return false
}

// AttendanceReport aggregates attendance counts over a date window. The
// shape is exactly what the PDF renderer consumes, no further lookups.
type AttendanceReport struct {
	TotalStudents int    `json:"totalStudents"`
	PresentCount  int    `json:"presentCount"`
	AbsentCount   int    `json:"absentCount"`
	LateCount     int    `json:"lateCount"`
	Date          string `json:"date"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	ClassName     string `json:"className,omitempty"`
	Section       string `json:"section,omitempty"`
}
