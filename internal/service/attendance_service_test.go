package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/dto"
	"github.com/noah-isme/school-dashboard-api/internal/models"
	"github.com/noah-isme/school-dashboard-api/internal/repository"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

func seededStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store, err := repository.NewMemoryStore(repository.DefaultSeed(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)))
	require.NoError(t, err)
	return store
}

func disabledCache() *CacheService {
	return NewCacheService(nil, nil, 0, nil)
}

func TestAttendanceSaveUnknownStudent(t *testing.T) {
	store := seededStore(t)
	svc := NewAttendanceService(store.Students, store.Attendance, disabledCache(), nil)

	_, err := svc.Save(context.Background(), dto.SaveAttendanceRequest{
		StudentID: 999,
		Date:      "2025-03-10",
		Status:    models.AttendancePresent,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	// nothing was written
	records, err := store.Attendance.ListByDate(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAttendanceSaveThenRollCall(t *testing.T) {
	store := seededStore(t)
	svc := NewAttendanceService(store.Students, store.Attendance, disabledCache(), nil)

	record, err := svc.Save(context.Background(), dto.SaveAttendanceRequest{
		StudentID: 1,
		Date:      "2025-03-10",
		Status:    models.AttendanceLate,
		Notes:     "تأخر عن الطابور",
	})
	require.NoError(t, err)
	assert.NotZero(t, record.ID)

	entries, err := svc.RollCall(context.Background(), dto.AttendanceListQuery{Date: "2025-03-10"})
	require.NoError(t, err)
	require.Len(t, entries, 5)

	marked := entries[0]
	require.NotNil(t, marked.AttendanceStatus)
	assert.Equal(t, models.AttendanceLate, *marked.AttendanceStatus)
	require.NotNil(t, marked.Notes)
	assert.Equal(t, "تأخر عن الطابور", *marked.Notes)

	for _, entry := range entries[1:] {
		assert.Nil(t, entry.AttendanceStatus)
		assert.Nil(t, entry.Notes)
	}
}

func TestAttendanceSaveOverwriteKeepsIdentity(t *testing.T) {
	store := seededStore(t)
	svc := NewAttendanceService(store.Students, store.Attendance, disabledCache(), nil)

	first, err := svc.Save(context.Background(), dto.SaveAttendanceRequest{
		StudentID: 2, Date: "2025-03-10", Status: models.AttendancePresent,
	})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), dto.SaveAttendanceRequest{
		StudentID: 2, Date: "2025-03-10", Status: models.AttendanceAbsent, Notes: "مريض",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	records, err := store.Attendance.ListByDate(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceAbsent, records[0].Status)
}

func TestAttendanceSummaryCountsToday(t *testing.T) {
	store := seededStore(t)
	svc := NewAttendanceService(store.Students, store.Attendance, disabledCache(), nil)
	today := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	saves := []dto.SaveAttendanceRequest{
		{StudentID: 1, Date: "2025-03-10", Status: models.AttendancePresent},
		{StudentID: 2, Date: "2025-03-10", Status: models.AttendancePresent},
		{StudentID: 3, Date: "2025-03-10", Status: models.AttendanceLate},
		{StudentID: 4, Date: "2025-03-10", Status: models.AttendanceAbsent},
		{StudentID: 5, Date: "2025-03-10", Status: models.AttendanceExcused},
		{StudentID: 1, Date: "2025-03-09", Status: models.AttendanceAbsent},
	}
	for _, save := range saves {
		_, err := svc.Save(context.Background(), save)
		require.NoError(t, err)
	}

	summary, hit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 5, summary.TotalStudents)
	assert.Equal(t, 2, summary.PresentCount)
	assert.Equal(t, 1, summary.AbsentCount)
	assert.Equal(t, 1, summary.LateCount)
}

func TestAttendanceRollCallSectionFilter(t *testing.T) {
	store := seededStore(t)
	svc := NewAttendanceService(store.Students, store.Attendance, disabledCache(), nil)

	entries, err := svc.RollCall(context.Background(), dto.AttendanceListQuery{ClassName: "الثالث", Section: "ب"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
