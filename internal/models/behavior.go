package models

import "time"

// ViolationSeverity grades how serious a violation is.
type ViolationSeverity string

const (
	SeverityLow    ViolationSeverity = "low"
	SeverityMedium ViolationSeverity = "medium"
	SeverityHigh   ViolationSeverity = "high"
)

// Valid reports whether the severity is one of the known values.
func (s ViolationSeverity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// BehaviorViolation records a disciplinary incident. StudentName is a
// snapshot taken when the violation is recorded so the historical record
// survives later roster edits.
type BehaviorViolation struct {
	ID            int64             `db:"id" json:"id"`
	StudentID     int64             `db:"student_id" json:"studentId"`
	StudentName   string            `db:"student_name" json:"studentName"`
	ViolationType string            `db:"violation_type" json:"violationType"`
	Description   string            `db:"description" json:"description"`
	Date          string            `db:"date" json:"date"`
	LessonPeriod  string            `db:"lesson_period" json:"lessonPeriod,omitempty"`
	Severity      ViolationSeverity `db:"severity" json:"severity"`
	CreatedAt     time.Time         `db:"created_at" json:"createdAt"`
}
