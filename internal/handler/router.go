package handler

import "github.com/gin-gonic/gin"

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Dashboard    *DashboardHandler
	Student      *StudentHandler
	Attendance   *AttendanceHandler
	Behavior     *BehaviorHandler
	Announcement *AnnouncementHandler
	Schedule     *ScheduleHandler
	Report       *ReportHandler
	Auth         *AuthHandler
}

// Register mounts the API routes under the given prefix.
func Register(r gin.IRouter, prefix string, h Handlers) {
	api := r.Group(prefix)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/attendance-summary", h.Dashboard.AttendanceSummary)
	dashboard.GET("/recent-activities", h.Dashboard.RecentActivities)
	dashboard.GET("/recent-announcements", h.Dashboard.RecentAnnouncements)

	api.GET("/students", h.Student.List)

	api.GET("/attendance", h.Attendance.List)
	api.POST("/attendance", h.Attendance.Save)

	api.GET("/behavior", h.Behavior.List)
	api.POST("/behavior", h.Behavior.Create)
	api.DELETE("/behavior/:id", h.Behavior.Delete)

	api.GET("/announcements", h.Announcement.List)
	api.POST("/announcements", h.Announcement.Create)
	api.DELETE("/announcements/:id", h.Announcement.Delete)

	api.GET("/schedule", h.Schedule.Get)

	api.GET("/reports/attendance/export", h.Report.Export)
	api.GET("/reports/:type", h.Report.Get)

	api.POST("/auth/login", h.Auth.Login)
}
