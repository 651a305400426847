package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-dashboard-api/internal/models"
)

// PostgresAnnouncementRepository persists announcements in PostgreSQL.
type PostgresAnnouncementRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewPostgresAnnouncementRepository constructs the repository.
func NewPostgresAnnouncementRepository(db *sqlx.DB) *PostgresAnnouncementRepository {
	return &PostgresAnnouncementRepository{db: db, now: time.Now}
}

// List returns announcements newest first, id ascending on ties.
func (r *PostgresAnnouncementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	const query = `SELECT id, title, content, start_date, end_date, importance, created_at
        FROM announcements ORDER BY created_at DESC, id ASC`
	announcements := []models.Announcement{}
	if err := r.db.SelectContext(ctx, &announcements, query); err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return announcements, nil
}

// Create inserts a new announcement and fills in the assigned id.
func (r *PostgresAnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement) error {
	if announcement.CreatedAt.IsZero() {
		announcement.CreatedAt = r.now().UTC()
	}
	const query = `INSERT INTO announcements (title, content, start_date, end_date, importance, created_at)
        VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	if err := r.db.GetContext(ctx, &announcement.ID, query,
		announcement.Title, announcement.Content, announcement.StartDate, announcement.EndDate,
		announcement.Importance, announcement.CreatedAt); err != nil {
		return fmt.Errorf("create announcement: %w", err)
	}
	return nil
}

// Delete removes the announcement, reporting whether a row was present.
func (r *PostgresAnnouncementRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete announcement: %w", err)
	}
	return affected > 0, nil
}
