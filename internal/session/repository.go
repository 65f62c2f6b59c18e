package session

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository defines the storage operations for sessions and participants.
// Lookup methods return (nil, nil) when the row does not exist; the service
// layer maps that to a not-found error.
type Repository interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSessionByID(ctx context.Context, id string) (*Session, error)
	GetSessionByCode(ctx context.Context, code string) (*Session, error)
	UpdateSessionName(ctx context.Context, id, name string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error

	AddParticipant(ctx context.Context, p *Participant) error
	GetParticipant(ctx context.Context, id string) (*Participant, error)
	ListParticipants(ctx context.Context, sessionID string) ([]*Participant, error)
	RemoveParticipant(ctx context.Context, id string) error
}

// PostgresRepository handles session persistence in PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL-backed session repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateSession inserts a new session into the database
func (r *PostgresRepository) CreateSession(ctx context.Context, s *Session) error {
	query := `
		INSERT INTO sessions (id, code, name, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	if err := r.db.QueryRowContext(ctx, query, s.ID, s.Code, s.Name, s.CreatedBy).Scan(&s.CreatedAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a session by its ID
func (r *PostgresRepository) GetSessionByID(ctx context.Context, id string) (*Session, error) {
	return r.getSession(ctx, `SELECT id, code, name, created_by, created_at FROM sessions WHERE id = $1`, id)
}

// GetSessionByCode retrieves a session by its share code
func (r *PostgresRepository) GetSessionByCode(ctx context.Context, code string) (*Session, error) {
	return r.getSession(ctx, `SELECT id, code, name, created_by, created_at FROM sessions WHERE code = $1`, code)
}

func (r *PostgresRepository) getSession(ctx context.Context, query, arg string) (*Session, error) {
	s := &Session{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&s.ID, &s.Code, &s.Name, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// UpdateSessionName renames a session
func (r *PostgresRepository) UpdateSessionName(ctx context.Context, id, name string) (*Session, error) {
	query := `
		UPDATE sessions SET name = $2 WHERE id = $1
		RETURNING id, code, name, created_by, created_at
	`

	s := &Session{}
	err := r.db.QueryRowContext(ctx, query, id, name).Scan(&s.ID, &s.Code, &s.Name, &s.CreatedBy, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return s, nil
}

// DeleteSession removes a session; participants, items, settlements and
// payment profiles cascade at the schema level
func (r *PostgresRepository) DeleteSession(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// AddParticipant inserts a new participant into the database
func (r *PostgresRepository) AddParticipant(ctx context.Context, p *Participant) error {
	query := `
		INSERT INTO participants (id, session_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	if err := r.db.QueryRowContext(ctx, query, p.ID, p.SessionID, p.Name).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("failed to add participant: %w", err)
	}
	return nil
}

// GetParticipant retrieves a participant by ID
func (r *PostgresRepository) GetParticipant(ctx context.Context, id string) (*Participant, error) {
	query := `SELECT id, session_id, name, created_at FROM participants WHERE id = $1`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.SessionID, &p.Name, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// ListParticipants retrieves all participants of a session in join order
func (r *PostgresRepository) ListParticipants(ctx context.Context, sessionID string) ([]*Participant, error) {
	query := `
		SELECT id, session_id, name, created_at FROM participants
		WHERE session_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(&p.ID, &p.SessionID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// RemoveParticipant deletes a participant. Bill items that reference the
// removed participant are left untouched; the split engine tolerates the
// dangling reference.
func (r *PostgresRepository) RemoveParticipant(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}
	return nil
}
