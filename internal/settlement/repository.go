package settlement

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository defines the storage operations for recorded settlements.
type Repository interface {
	Create(ctx context.Context, s *Settlement) error
	ListBySession(ctx context.Context, sessionID string) ([]*Settlement, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PostgresRepository handles settlement persistence in PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL-backed settlement repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a recorded settlement into the database
func (r *PostgresRepository) Create(ctx context.Context, s *Settlement) error {
	query := `
		INSERT INTO settlements (id, session_id, from_participant, to_participant, amount, method, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		s.ID,
		s.SessionID,
		s.FromParticipant,
		s.ToParticipant,
		s.Amount,
		s.Method,
		s.Note,
	).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record settlement: %w", err)
	}
	return nil
}

// ListBySession retrieves a session's recorded settlements, newest first
func (r *PostgresRepository) ListBySession(ctx context.Context, sessionID string) ([]*Settlement, error) {
	query := `
		SELECT id, session_id, from_participant, to_participant, amount, method, note, created_at
		FROM settlements
		WHERE session_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		s := &Settlement{}
		err := rows.Scan(&s.ID, &s.SessionID, &s.FromParticipant, &s.ToParticipant, &s.Amount, &s.Method, &s.Note, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, s)
	}
	return settlements, rows.Err()
}

// Delete removes a recorded settlement, reporting whether it existed
func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM settlements WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete settlement: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete settlement: %w", err)
	}
	return n > 0, nil
}
