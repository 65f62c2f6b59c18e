package payment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository defines the storage operations for payment profiles.
type Repository interface {
	Upsert(ctx context.Context, p *Profile) error
	ListBySession(ctx context.Context, sessionID string) ([]*Profile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PostgresRepository handles payment profile persistence in PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL-backed payment repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts a profile, replacing any existing handle the participant
// registered for the same method
func (r *PostgresRepository) Upsert(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO payment_profiles (id, session_id, participant_id, method, handle)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (participant_id, method)
		DO UPDATE SET handle = EXCLUDED.handle
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query, p.ID, p.SessionID, p.ParticipantID, p.Method, p.Handle).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert payment profile: %w", err)
	}
	return nil
}

// ListBySession retrieves all payment profiles registered in a session
func (r *PostgresRepository) ListBySession(ctx context.Context, sessionID string) ([]*Profile, error) {
	query := `
		SELECT id, session_id, participant_id, method, handle, created_at
		FROM payment_profiles
		WHERE session_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		if err := rows.Scan(&p.ID, &p.SessionID, &p.ParticipantID, &p.Method, &p.Handle, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Delete removes a payment profile, reporting whether it existed
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_profiles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete payment profile: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete payment profile: %w", err)
	}
	return n > 0, nil
}
