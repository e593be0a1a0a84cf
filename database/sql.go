package database

import (
	"context"
	"database/sql"
)

// SQLDatabase adapts *sql.DB to the Database interface.
type SQLDatabase struct {
	db *sql.DB
}

func NewSQLDatabase(db *sql.DB) *SQLDatabase {
	return &SQLDatabase{db: db}
}

func (s *SQLDatabase) Query(query string, args ...any) (Rows, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}

func (s *SQLDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &sqlRows{rows: rows}, nil
}

func (s *SQLDatabase) Exec(query string, args ...any) (Result, error) {
	return s.db.Exec(query, args...)
}

func (s *SQLDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLDatabase) Close() error { return s.db.Close() }

func (s *SQLDatabase) Prepare(query string) (*sql.Stmt, error) { return s.db.Prepare(query) }

// DB exposes the wrapped handle for statement-cache preparation.
func (s *SQLDatabase) DB() *sql.DB { return s.db }

type sqlRows struct {
	rows *sql.Rows
}

func (s *sqlRows) Next() bool                 { return s.rows.Next() }
func (s *sqlRows) Scan(dest ...any) error     { return s.rows.Scan(dest...) }
func (s *sqlRows) Close() error               { return s.rows.Close() }
func (s *sqlRows) Columns() ([]string, error) { return s.rows.Columns() }

var _ Database = (*SQLDatabase)(nil)
