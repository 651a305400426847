package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/school-dashboard-api/pkg/errors"
)

// PostgresUserRepository persists dashboard accounts in PostgreSQL.
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository constructs the repository.
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// FindByUsername fetches an account by its unique username.
func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = "SELECT id, username, password_hash FROM users WHERE username = $1"
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Create inserts a new account and fills in the assigned id.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	const query = "INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id"
	if err := r.db.GetContext(ctx, &user.ID, query, user.Username, user.PasswordHash); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
