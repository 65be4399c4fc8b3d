package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection"
)

// GetByPhone retrieves an identity by phone number
func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `
		SELECT id, phone, nom, prenom, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, prospection.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// List retrieves all identities, newest first
func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, phone, nom, prenom, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Create inserts a new identity
func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, phone, nom, prenom, created_at, updated_at)
		VALUES (:id, :phone, :nom, :prenom, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// Update updates the mutable identity fields. The phone number is the key
// and never changes.
func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET nom = :nom, prenom = :prenom, updated_at = :updated_at
		WHERE phone = :phone
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return prospection.ErrUserNotFound
	}

	return nil
}

// Delete removes an identity. Its visit records must be removed first to
// satisfy the foreign key.
func (r *UserRepo) Delete(ctx context.Context, phone string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE phone = $1`, phone)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return prospection.ErrUserNotFound
	}

	return nil
}
