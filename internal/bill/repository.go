package bill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository defines the storage operations for bill items. Lookups return
// (nil, nil) when the row does not exist.
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItemByID(ctx context.Context, id string) (*Item, error)
	ListItemsBySession(ctx context.Context, sessionID string) ([]*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id string) error
}

// PostgresRepository handles bill item persistence in PostgreSQL
type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL-backed bill repository
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateItem inserts a new bill item into the database
func (r *PostgresRepository) CreateItem(ctx context.Context, item *Item) error {
	query := `
		INSERT INTO bill_items (id, session_id, name, total_amount, paid_by, shared_by, has_sst)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		item.ID,
		item.SessionID,
		item.Name,
		item.TotalAmount,
		item.PaidBy,
		pq.Array(item.SharedBy),
		item.HasSST,
	).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bill item: %w", err)
	}
	return nil
}

// GetItemByID retrieves a bill item by its ID
func (r *PostgresRepository) GetItemByID(ctx context.Context, id string) (*Item, error) {
	query := `
		SELECT id, session_id, name, total_amount, paid_by, shared_by, has_sst, created_at
		FROM bill_items
		WHERE id = $1
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.SessionID,
		&item.Name,
		&item.TotalAmount,
		&item.PaidBy,
		pq.Array(&item.SharedBy),
		&item.HasSST,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill item: %w", err)
	}
	return item, nil
}

// ListItemsBySession retrieves all items of a session in creation order
func (r *PostgresRepository) ListItemsBySession(ctx context.Context, sessionID string) ([]*Item, error) {
	query := `
		SELECT id, session_id, name, total_amount, paid_by, shared_by, has_sst, created_at
		FROM bill_items
		WHERE session_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.Name,
			&item.TotalAmount,
			&item.PaidBy,
			pq.Array(&item.SharedBy),
			&item.HasSST,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem rewrites a bill item's mutable fields
func (r *PostgresRepository) UpdateItem(ctx context.Context, item *Item) error {
	query := `
		UPDATE bill_items
		SET name = $2, total_amount = $3, paid_by = $4, shared_by = $5, has_sst = $6
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		item.TotalAmount,
		item.PaidBy,
		pq.Array(item.SharedBy),
		item.HasSST,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill item: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteItem removes a bill item
func (r *PostgresRepository) DeleteItem(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bill_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete bill item: %w", err)
	}
	return nil
}
