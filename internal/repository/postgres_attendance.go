package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// PostgresAttendanceRepository persists attendance records in PostgreSQL.
// The (student_id, date) pair carries a unique constraint, so the upsert
// happens in one statement.
type PostgresAttendanceRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresAttendanceRepository constructs the repository.
func NewPostgresAttendanceRepository(db *sqlx.DB) *PostgresAttendanceRepository {
	return &PostgresAttendanceRepository{db: db, now: time.Now}
}

// Upsert inserts or overwrites the record for its pair. The conflict branch
// leaves id and created_at untouched; both are read back into the record.
func (r *PostgresAttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) error {
	const query = `INSERT INTO attendance_records (student_id, date, status, notes, created_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (student_id, date) DO UPDATE SET status = EXCLUDED.status, notes = EXCLUDED.notes
        RETURNING id, created_at`

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	row := r.db.QueryRowxContext(ctx, query, record.StudentID, record.Date, record.Status, record.Notes, createdAt)
	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return fmt.Errorf("upsert attendance: %w", err)
	}
	return nil
}

// ListByDate returns all records for one calendar date.
func (r *PostgresAttendanceRepository) ListByDate(ctx context.Context, date string) ([]models.AttendanceRecord, error) {
	const query = `SELECT id, student_id, date, status, notes, created_at
        FROM attendance_records WHERE date = $1 ORDER BY id ASC`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, date); err != nil {
		return nil, fmt.Errorf("list attendance by date: %w", err)
	}
	return records, nil
}

// ListByDateRange returns records inside the inclusive window. Empty bounds
// act as wildcards.
func (r *PostgresAttendanceRepository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]models.AttendanceRecord, error) {
	query := "SELECT id, student_id, date, status, notes, created_at FROM attendance_records"
	conditions := []string{}
	args := []interface{}{}

	if startDate != "" {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)+1))
		args = append(args, startDate)
	}
	if endDate != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)+1))
		args = append(args, endDate)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance by range: %w", err)
	}
	return records, nil
}

// Recent returns up to limit records, newest first.
func (r *PostgresAttendanceRepository) Recent(ctx context.Context, limit int) ([]models.AttendanceRecord, error) {
	const query = `SELECT id, student_id, date, status, notes, created_at
        FROM attendance_records ORDER BY created_at DESC, id DESC LIMIT $1`
	records := []models.AttendanceRecord{}
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("recent attendance: %w", err)
	}
	return records, nil
}
