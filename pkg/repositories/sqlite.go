package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS saves (
	id TEXT PRIMARY KEY,
	updated_at INTEGER NOT NULL,
	data BLOB NOT NULL
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, fmt.Errorf("failed to create saves table: %v", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close(ctx context.Context) error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, id string, data []byte) error {
	q := `
	INSERT OR REPLACE INTO saves (id, updated_at, data)
	VALUES (?, ?, ?);
	`
	if _, err := s.db.ExecContext(ctx, q, id, time.Now().Unix(), data); err != nil {
		return fmt.Errorf("failed to insert save: %v", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, id string) ([]byte, error) {
	q := `
	SELECT data FROM saves WHERE id = ?;
	`
	var data []byte
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan save: %v", err)
	}
	return data, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	q := `
	DELETE FROM saves WHERE id = ?;
	`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("failed to delete save: %v", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &ErrNotFound{}
	}
	return nil
}
