package repository

import (
	"context"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// StaticScheduleRepository serves one fixed weekly timetable regardless of
// the requested class. The timetable is demo content; the requested
// className/section are echoed into the result labels so the client renders
// its own headings.
type StaticScheduleRepository struct {
	schedule models.ClassSchedule
}

// NewStaticScheduleRepository constructs the repository around the given
// timetable.
func NewStaticScheduleRepository(schedule models.ClassSchedule) *StaticScheduleRepository {
	return &StaticScheduleRepository{schedule: schedule}
}

// Get returns the timetable labelled with the requested class/section,
// falling back to the seed labels.
func (r *StaticScheduleRepository) Get(_ context.Context, className, section string) (*models.ClassSchedule, error) {
	schedule := r.schedule
	if className != "" {
		schedule.ClassName = className
	}
	if section != "" {
		schedule.Section = section
	}
	return &schedule, nil
}
