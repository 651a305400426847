package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// PostgresBehaviorRepository persists violation records in PostgreSQL.
type PostgresBehaviorRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresBehaviorRepository constructs the repository.
func NewPostgresBehaviorRepository(db *sqlx.DB) *PostgresBehaviorRepository {
	return &PostgresBehaviorRepository{db: db, now: time.Now}
}

// List returns all violations in insertion (id) order.
func (r *PostgresBehaviorRepository) List(ctx context.Context) ([]models.BehaviorViolation, error) {
	const query = `SELECT id, student_id, student_name, violation_type, description, date, lesson_period, severity, created_at
        FROM behavior_violations ORDER BY id ASC`
	violations := []models.BehaviorViolation{}
	if err := r.db.SelectContext(ctx, &violations, query); err != nil {
		return nil, fmt.Errorf("list violations: %w", err)
	}
	return violations, nil
}

// Create inserts a new violation and fills in the assigned id.
func (r *PostgresBehaviorRepository) Create(ctx context.Context, violation *models.BehaviorViolation) error {
	if violation.CreatedAt.IsZero() {
		violation.CreatedAt = r.now().UTC()
	}
	const query = `INSERT INTO behavior_violations (student_id, student_name, violation_type, description, date, lesson_period, severity, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.GetContext(ctx, &violation.ID, query,
		violation.StudentID, violation.StudentName, violation.ViolationType, violation.Description,
		violation.Date, violation.LessonPeriod, violation.Severity, violation.CreatedAt); err != nil {
		return fmt.Errorf("create violation: %w", err)
	}
	return nil
}

// Delete removes the violation, reporting whether a row was present.
func (r *PostgresBehaviorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM behavior_violations WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete violation: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete violation: %w", err)
	}
	return affected > 0, nil
}

// Recent returns up to limit violations, newest first.
func (r *PostgresBehaviorRepository) Recent(ctx context.Context, limit int) ([]models.BehaviorViolation, error) {
	const query = `SELECT id, student_id, student_name, violation_type, description, date, lesson_period, severity, created_at
        FROM behavior_violations ORDER BY created_at DESC, id DESC LIMIT $1`
	violations := []models.BehaviorViolation{}
	if err := r.db.SelectContext(ctx, &violations, query, limit); err != nil {
		return nil, fmt.Errorf("recent violations: %w", err)
	}
	return violations, nil
}
