package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// PostgresStudentRepository persists the roster in PostgreSQL.
type PostgresStudentRepository struct {
	db *sqlx.DB
}

// NewPostgresStudentRepository constructs the repository.
func NewPostgresStudentRepository(db *sqlx.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

// List returns students matching the filter in insertion (id) order.
func (r *PostgresStudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := "SELECT id, name, class_name, section FROM students"
	conditions := []string{}
	args := []interface{}{}

	if filter.ClassName != "" {
		conditions = append(conditions, fmt.Sprintf("class_name = $%d", len(args)+1))
		args = append(args, filter.ClassName)
	}
	if filter.Section != "" {
		conditions = append(conditions, fmt.Sprintf("section = $%d", len(args)+1))
		args = append(args, filter.Section)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by id.
func (r *PostgresStudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	const query = "SELECT id, name, class_name, section FROM students WHERE id = $1"
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

// Create inserts a new student and fills in the assigned id.
func (r *PostgresStudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = "INSERT INTO students (name, class_name, section) VALUES ($1, $2, $3) RETURNING id"
	if err := r.db.GetContext(ctx, &student.ID, query, student.Name, student.ClassName, student.Section); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Count returns the roster size.
func (r *PostgresStudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM students"); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}
