package database

import (
	"context"
	"database/sql"
)

// Database is the execution surface a built statement is handed to. The
// builder itself never executes SQL; these adapters are the seam to a
// real driver.
type Database interface {
	Query(query string, args ...any) (Rows, error)
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	Exec(query string, args ...any) (Result, error)
	PingContext(ctx context.Context) error
	Close() error
	Prepare(query string) (*sql.Stmt, error)
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Columns() ([]string, error)
}

type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}
