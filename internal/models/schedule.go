package models

// SchedulePeriod is one slot of the school day, breaks included.
type SchedulePeriod struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// ScheduleLesson places a subject and teacher into a day/period cell.
// PeriodIndex addresses the Periods slice of the owning schedule.
type ScheduleLesson struct {
	Day         string `json:"day"`
	PeriodIndex int    `json:"periodIndex"`
	Subject     string `json:"subject"`
	Teacher     string `json:"teacher"`
}

// ClassSchedule is the weekly timetable for one class/section.
type ClassSchedule struct {
	ClassName string           `json:"className"`
	Section   string           `json:"section"`
	Days      []string         `json:"days"`
	Periods   []SchedulePeriod `json:"periods"`
	Lessons   []ScheduleLesson `json:"lessons"`
}
