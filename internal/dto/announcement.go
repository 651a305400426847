package dto

import "github.com/noah-isme/school-dashboard-api/internal/models"

// CreateAnnouncementRequest is the POST /announcements body. EndDate is
// nullable for open-ended announcements.
type CreateAnnouncementRequest struct {
	Title      string                        `json:"title" binding:"required"`
	Content    string                        `json:"content" binding:"required"`
	StartDate  string                        `json:"startDate" binding:"required"`
	EndDate    *string                       `json:"endDate"`
	Importance models.AnnouncementImportance `json:"importance" binding:"required,oneof=normal important urgent"`
}
