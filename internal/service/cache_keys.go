package service

import "fmt"

// Cache keys are stable per route + query identity; invalidation patterns
// cover every key a mutation can stale.
const (
	cacheKeyAttendanceSummary   = "dash:summary"
	cacheKeyRecentActivities    = "dash:activities"
	cacheKeyAnnouncements       = "announcements:all"
	cacheKeyRecentAnnouncements = "announcements:recent"

	cachePatternDashboard     = "dash:*"
	cachePatternAnnouncements = "announcements:*"
)

func cacheKeySchedule(className, section string) string {
	return fmt.Sprintf("schedule:%s:%s", className, section)
}
