package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS saves (
	id TEXT PRIMARY KEY,
	updated_at BIGINT NOT NULL,
	data BYTEA NOT NULL
);
`

type PostgresStore struct {
	conn *pgx.Conn
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}
	if _, err := conn.Exec(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %v", err)
	}
	return &PostgresStore{conn: conn}, nil
}

func (s *PostgresStore) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

func (s *PostgresStore) Save(ctx context.Context, id string, data []byte) error {
	q := `
	INSERT INTO saves (id, updated_at, data) VALUES ($1, $2, $3)
	ON CONFLICT (id) DO UPDATE SET updated_at = $2, data = $3;
	`
	if _, err := s.conn.Exec(ctx, q, id, time.Now().Unix(), data); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, id string) ([]byte, error) {
	q := `
	SELECT data FROM saves WHERE id = $1;
	`
	var data []byte
	if err := s.conn.QueryRow(ctx, q, id).Scan(&data); err != nil {
		if err == pgx.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}
	return data, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	q := `
	DELETE FROM saves WHERE id = $1;
	`
	res, err := s.conn.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("failed to delete save: %v", err)
	}
	if res.RowsAffected() == 0 {
		return &ErrNotFound{}
	}
	return nil
}
