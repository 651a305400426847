package models

import "time"

// ActivityType categorises a dashboard feed entry.
type ActivityType string

const (
	ActivityAttendance ActivityType = "attendance"
	ActivityLate       ActivityType = "late"
	ActivityAbsence    ActivityType = "absence"
	ActivityExcused    ActivityType = "excused"
	ActivityViolation  ActivityType = "violation"
)

// RecentActivity is one entry of the dashboard feed, derived from
// attendance and violation events.
type RecentActivity struct {
	ID          int64        `json:"id"`
	Type        ActivityType `json:"type"`
	Description string       `json:"description"`
	StudentName string       `json:"studentName"`
	Time        string       `json:"time"`
	CreatedAt   time.Time    `json:"createdAt"`
}
