package repository

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/mahabubulhasibshawon/dairy-admin/internal/domain"
	"github.com/mahabubulhasibshawon/dairy-admin/internal/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS activity_log (
	id BIGSERIAL PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	operator VARCHAR(255) NOT NULL,
	method VARCHAR(10) NOT NULL,
	path TEXT NOT NULL,
	outcome VARCHAR(32) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) ports.JournalPort {
	return &PostgresRepository{db: db}
}

func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (r *PostgresRepository) Record(ctx context.Context, a *domain.Activity) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO activity_log (session_id, operator, method, path, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		a.SessionID, a.Operator, a.Method, a.Path, a.Outcome, a.CreatedAt,
	).Scan(&a.ID)
}

func (r *PostgresRepository) ListActivity(ctx context.Context, limit, page int64) ([]*domain.Activity, int64, error) {
	if limit < 1 {
		limit = 20
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM activity_log").Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, operator, method, path, outcome, created_at
		FROM activity_log ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*domain.Activity
	for rows.Next() {
		a := &domain.Activity{}
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Operator, &a.Method, &a.Path, &a.Outcome, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}
