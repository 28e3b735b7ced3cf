package session

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domainsession "github.com/alanyang/currency-mesh/internal/domain/session"
	portsession "github.com/alanyang/currency-mesh/internal/port/session"
)

var _ portsession.Store = (*Repository)(nil)

// Repository persists session history in Postgres. The table is append
// only; rows are never updated or deleted.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Append(ctx context.Context, e domainsession.Entry) error {
	query := `
		INSERT INTO session_messages (id, session_id, role, content, created_at)
		VALUES ($1,$2,$3,$4,$5)`

	_, err := r.pool.Exec(ctx, query,
		e.ID, e.SessionID, string(e.Role), e.Content, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting session message: %w", err)
	}
	return nil
}

func (r *Repository) History(ctx context.Context, sessionID string) ([]domainsession.Entry, error) {
	query := `
		SELECT id, session_id, role, content, created_at
		FROM session_messages WHERE session_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing session messages: %w", err)
	}
	defer rows.Close()

	var entries []domainsession.Entry
	for rows.Next() {
		var e domainsession.Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Role, &e.Content, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning session message row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
