package repository

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// Seed carries the demo content loaded into a fresh store. Ids are assigned
// by the store, not by the seed.
type Seed struct {
	Students      []models.Student
	Announcements []models.Announcement
	Users         []SeedUser
	Schedule      models.ClassSchedule
}

// SeedUser is a plaintext credential hashed while seeding.
type SeedUser struct {
	Username string
	Password string
}

// DefaultScheduleClass labels the timetable when no class is requested.
const (
	DefaultScheduleClass   = "الثالث"
	DefaultScheduleSection = "أ"
)

// DefaultSeed returns the demo roster, announcements, credential and
// timetable shipped with the dashboard.
func DefaultSeed(now time.Time) Seed {
	day := 24 * time.Hour
	endSoon := now.Add(5 * day)
	endLater := now.Add(15 * day)

	return Seed{
		Students: []models.Student{
			{Name: "أحمد محمد العمري", ClassName: "الثالث", Section: "أ"},
			{Name: "خالد عبدالله السالم", ClassName: "الثالث", Section: "أ"},
			{Name: "فهد سعد الغامدي", ClassName: "الثالث", Section: "أ"},
			{Name: "محمد علي السعدي", ClassName: "الثالث", Section: "ب"},
			{Name: "عبدالله محمد الحربي", ClassName: "الثالث", Section: "ب"},
		},
		Announcements: []models.Announcement{
			{
				Title:      "اجتماع أولياء الأمور",
				Content:    "سيعقد اجتماع أولياء الأمور يوم الخميس القادم الساعة 6 مساءً.",
				StartDate:  now,
				EndDate:    &endSoon,
				Importance: models.ImportanceUrgent,
				CreatedAt:  now,
			},
			{
				Title:      "الاختبارات النهائية",
				Content:    "تبدأ الاختبارات النهائية يوم الأحد القادم. يرجى الاستعداد.",
				StartDate:  now.Add(-2 * day),
				EndDate:    &endLater,
				Importance: models.ImportanceImportant,
				CreatedAt:  now,
			},
		},
		Users: []SeedUser{
			{Username: "sami", Password: "12345"},
		},
		Schedule: DefaultSchedule(),
	}
}

// HashPassword derives the stored bcrypt hash for a seed credential.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// DefaultSchedule returns the static weekly timetable.
func DefaultSchedule() models.ClassSchedule {
	return models.ClassSchedule{
		ClassName: DefaultScheduleClass,
		Section:   DefaultScheduleSection,
		Days:      []string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس"},
		Periods: []models.SchedulePeriod{
			{Name: "الأولى", Time: "7:30 - 8:15"},
			{Name: "الثانية", Time: "8:15 - 9:00"},
			{Name: "الثالثة", Time: "9:00 - 9:45"},
			{Name: "الفسحة", Time: "9:45 - 10:15"},
			{Name: "الرابعة", Time: "10:15 - 11:00"},
			{Name: "الخامسة", Time: "11:00 - 11:45"},
			{Name: "السادسة", Time: "11:45 - 12:30"},
		},
		Lessons: []models.ScheduleLesson{
			{Day: "الأحد", PeriodIndex: 0, Subject: "رياضيات", Teacher: "أ. محمد"},
			{Day: "الأحد", PeriodIndex: 1, Subject: "لغة عربية", Teacher: "أ. خالد"},
			{Day: "الأحد", PeriodIndex: 2, Subject: "علوم", Teacher: "أ. أحمد"},
			{Day: "الأحد", PeriodIndex: 4, Subject: "تربية إسلامية", Teacher: "أ. عبدالله"},
			{Day: "الأحد", PeriodIndex: 5, Subject: "لغة إنجليزية", Teacher: "أ. فهد"},
			{Day: "الأحد", PeriodIndex: 6, Subject: "حاسب آلي", Teacher: "أ. سعد"},

			{Day: "الاثنين", PeriodIndex: 0, Subject: "علوم", Teacher: "أ. أحمد"},
			{Day: "الاثنين", PeriodIndex: 1, Subject: "رياضيات", Teacher: "أ. محمد"},
			{Day: "الاثنين", PeriodIndex: 2, Subject: "لغة عربية", Teacher: "أ. خالد"},
			{Day: "الاثنين", PeriodIndex: 4, Subject: "لغة إنجليزية", Teacher: "أ. فهد"},
			{Day: "الاثنين", PeriodIndex: 5, Subject: "تربية بدنية", Teacher: "أ. ماجد"},
			{Day: "الاثنين", PeriodIndex: 6, Subject: "تربية إسلامية", Teacher: "أ. عبدالله"},

			{Day: "الثلاثاء", PeriodIndex: 0, Subject: "لغة عربية", Teacher: "أ. خالد"},
			{Day: "الثلاثاء", PeriodIndex: 1, Subject: "علوم", Teacher: "أ. أحمد"},
			{Day: "الثلاثاء", PeriodIndex: 2, Subject: "رياضيات", Teacher: "أ. محمد"},
			{Day: "الثلاثاء", PeriodIndex: 4, Subject: "تربية بدنية", Teacher: "أ. ماجد"},
			{Day: "الثلاثاء", PeriodIndex: 5, Subject: "تربية إسلامية", Teacher: "أ. عبدالله"},
			{Day: "الثلاثاء", PeriodIndex: 6, Subject: "لغة إنجليزية", Teacher: "أ. فهد"},

			{Day: "الأربعاء", PeriodIndex: 0, Subject: "تربية إسلامية", Teacher: "أ. عبدالله"},
			{Day: "الأربعاء", PeriodIndex: 1, Subject: "لغة إنجليزية", Teacher: "أ. فهد"},
			{Day: "الأربعاء", PeriodIndex: 2, Subject: "علوم", Teacher: "أ. أحمد"},
			{Day: "الأربعاء", PeriodIndex: 4, Subject: "رياضيات", Teacher: "أ. محمد"},
			{Day: "الأربعاء", PeriodIndex: 5, Subject: "حاسب آلي", Teacher: "أ. سعد"},
			{Day: "الأربعاء", PeriodIndex: 6, Subject: "لغة عربية", Teacher: "أ. خالد"},

			{Day: "الخميس", PeriodIndex: 0, Subject: "لغة إنجليزية", Teacher: "أ. فهد"},
			{Day: "الخميس", PeriodIndex: 1, Subject: "حاسب آلي", Teacher: "أ. سعد"},
			{Day: "الخميس", PeriodIndex: 2, Subject: "تربية بدنية", Teacher: "أ. ماجد"},
			{Day: "الخميس", PeriodIndex: 4, Subject: "لغة عربية", Teacher: "أ. خالد"},
			{Day: "الخميس", PeriodIndex: 5, Subject: "علوم", Teacher: "أ. أحمد"},
			{Day: "الخميس", PeriodIndex: 6, Subject: "رياضيات", Teacher: "أ. محمد"},
		},
	}
}
