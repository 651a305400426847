package models

import "time"

// AttendanceStatus is the closed set of daily attendance states.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

// Valid reports whether the status is one of the known values.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceRecord stores one student's state for one calendar date.
// (StudentID, Date) is unique: a second save for the pair overwrites the
// record, keeping its id and original CreatedAt.
type AttendanceRecord struct {
	ID        int64            `db:"id" json:"id"`
	StudentID int64            `db:"student_id" json:"studentId"`
	Date      string           `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
	Notes     string           `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}

// RollCallEntry joins a student with their attendance state for a requested
// date. Status and notes stay absent for students without a record.
type RollCallEntry struct {
	Student
	AttendanceStatus *AttendanceStatus `json:"attendanceStatus,omitempty"`
	Notes            *string           `json:"notes,omitempty"`
}

// AttendanceSummary is the dashboard headline: the student count plus
// today's per-status tallies.
type AttendanceSummary struct {
	TotalStudents int `json:"totalStudents"`
	PresentCount  int `json:"presentCount"`
	AbsentCount   int `json:"absentCount"`
	LateCount     int `json:"lateCount"`
}
