package models

import "time"

// AnnouncementImportance defines the display weight of an announcement.
type AnnouncementImportance string

const (
	ImportanceNormal    AnnouncementImportance = "normal"
	ImportanceImportant AnnouncementImportance = "important"
	ImportanceUrgent    AnnouncementImportance = "urgent"
)

// Valid reports whether the importance is one of the known values.
func (i AnnouncementImportance) Valid() bool {
	switch i {
	case ImportanceNormal, ImportanceImportant, ImportanceUrgent:
		return true
	}
	return false
}

// Announcement is a school-wide notice. EndDate stays nil for open-ended
// announcements and serialises as JSON null.
type Announcement struct {
	ID         int64                  `db:"id" json:"id"`
	Title      string                 `db:"title" json:"title"`
	Content    string                 `db:"content" json:"content"`
	StartDate  time.Time              `db:"start_date" json:"startDate"`
	EndDate    *time.Time             `db:"end_date" json:"endDate"`
	Importance AnnouncementImportance `db:"importance" json:"importance"`
	CreatedAt  time.Time              `db:"created_at" json:"createdAt"`
}
