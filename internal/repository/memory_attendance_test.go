package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

func TestMemoryAttendanceUpsertKeepsIdentity(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return base }

	first := models.AttendanceRecord{StudentID: 1, Date: "2025-03-10", Status: models.AttendancePresent}
	require.NoError(t, repo.Upsert(context.Background(), &first))

	repo.now = func() time.Time { return base.Add(time.Hour) }
	second := models.AttendanceRecord{StudentID: 1, Date: "2025-03-10", Status: models.AttendanceLate, Notes: "تأخر عن الطابور"}
	require.NoError(t, repo.Upsert(context.Background(), &second))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	records, err := repo.ListByDate(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.AttendanceLate, records[0].Status)
	assert.Equal(t, "تأخر عن الطابور", records[0].Notes)
}

func TestMemoryAttendanceDistinctPairs(t *testing.T) {
	repo := NewMemoryAttendanceRepository()

	a := models.AttendanceRecord{StudentID: 1, Date: "2025-03-10", Status: models.AttendancePresent}
	b := models.AttendanceRecord{StudentID: 1, Date: "2025-03-11", Status: models.AttendanceAbsent}
	c := models.AttendanceRecord{StudentID: 2, Date: "2025-03-10", Status: models.AttendancePresent}
	require.NoError(t, repo.Upsert(context.Background(), &a))
	require.NoError(t, repo.Upsert(context.Background(), &b))
	require.NoError(t, repo.Upsert(context.Background(), &c))

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)

	records, err := repo.ListByDate(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestMemoryAttendanceListByDateRange(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	for i, date := range []string{"2025-03-01", "2025-03-05", "2025-03-09", "2025-03-15"} {
		record := models.AttendanceRecord{StudentID: int64(i + 1), Date: date, Status: models.AttendancePresent}
		require.NoError(t, repo.Upsert(context.Background(), &record))
	}

	records, err := repo.ListByDateRange(context.Background(), "2025-03-02", "2025-03-10")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-05", records[0].Date)
	assert.Equal(t, "2025-03-09", records[1].Date)

	all, err := repo.ListByDateRange(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestMemoryAttendanceRecentNewestFirst(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		tick := base.Add(time.Duration(i) * time.Minute)
		repo.now = func() time.Time { return tick }
		record := models.AttendanceRecord{StudentID: int64(i + 1), Date: "2025-03-10", Status: models.AttendancePresent}
		require.NoError(t, repo.Upsert(context.Background(), &record))
	}

	records, err := repo.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(4), records[0].StudentID)
	assert.Equal(t, int64(3), records[1].StudentID)
	assert.Equal(t, int64(2), records[2].StudentID)
}
