package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prospecta/backend/internal/pkg/models"
)

// GetByPhone retrieves the current visit record for a phone, or nil when
// none was submitted yet
func (r *ProspectionRepo) GetByPhone(ctx context.Context, phone string) (*models.Prospection, error) {
	query := `
		SELECT id, phone, zone, immeuble, bloc_immeuble, appartement,
			nom_client, num_contact, resultat_prospection, type_client,
			location_shared, latitude, longitude, geohash, location_timestamp,
			created_at, updated_at
		FROM prospections
		WHERE phone = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var p models.Prospection
	err := r.db.GetContext(ctx, &p, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get prospection: %w", err)
	}

	return &p, nil
}

// ListAll retrieves every visit record
func (r *ProspectionRepo) ListAll(ctx context.Context) ([]*models.Prospection, error) {
	query := `
		SELECT id, phone, zone, immeuble, bloc_immeuble, appartement,
			nom_client, num_contact, resultat_prospection, type_client,
			location_shared, latitude, longitude, geohash, location_timestamp,
			created_at, updated_at
		FROM prospections
		ORDER BY created_at DESC
	`

	var prospections []*models.Prospection
	if err := r.db.SelectContext(ctx, &prospections, query); err != nil {
		return nil, fmt.Errorf("failed to list prospections: %w", err)
	}

	return prospections, nil
}

// Upsert writes the current visit record for a phone: the existing row is
// updated when one exists, otherwise a new row is inserted. Concurrent
// submissions for the same phone are last write wins.
func (r *ProspectionRepo) Upsert(ctx context.Context, p *models.Prospection) error {
	p.UpdatedAt = time.Now()

	updateQuery := `
		UPDATE prospections
		SET zone = :zone, immeuble = :immeuble, bloc_immeuble = :bloc_immeuble,
			appartement = :appartement, nom_client = :nom_client,
			num_contact = :num_contact, resultat_prospection = :resultat_prospection,
			type_client = :type_client, location_shared = :location_shared,
			latitude = :latitude, longitude = :longitude, geohash = :geohash,
			location_timestamp = :location_timestamp, updated_at = :updated_at
		WHERE id = :id
	`

	if p.ID != uuid.Nil {
		result, err := r.db.NamedExecContext(ctx, updateQuery, p)
		if err != nil {
			return fmt.Errorf("failed to update prospection: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows > 0 {
			return nil
		}
	}

	p.ID = uuid.New()
	p.CreatedAt = p.UpdatedAt

	insertQuery := `
		INSERT INTO prospections (
			id, phone, zone, immeuble, bloc_immeuble, appartement,
			nom_client, num_contact, resultat_prospection, type_client,
			location_shared, latitude, longitude, geohash, location_timestamp,
			created_at, updated_at
		) VALUES (
			:id, :phone, :zone, :immeuble, :bloc_immeuble, :appartement,
			:nom_client, :num_contact, :resultat_prospection, :type_client,
			:location_shared, :latitude, :longitude, :geohash, :location_timestamp,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, insertQuery, p); err != nil {
		return fmt.Errorf("failed to insert prospection: %w", err)
	}

	return nil
}

// DeleteByPhone removes every visit record for a phone. Deleting for a
// phone with no records is not an error.
func (r *ProspectionRepo) DeleteByPhone(ctx context.Context, phone string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM prospections WHERE phone = $1`, phone); err != nil {
		return fmt.Errorf("failed to delete prospections: %w", err)
	}
	return nil
}
