package database

import (
	"context"

	"github.com/sqlforge/sqlforge/cache"
	"github.com/sqlforge/sqlforge/query"
	"github.com/sqlforge/sqlforge/utils"
)

// Runner builds statements and hands them to a Database. When the target
// supports preparation, prepared statements are cached by the rendered
// SQL text, so builds differing only in bound values share one
// *sql.Stmt.
type Runner struct {
	db    Database
	stmts *cache.StatementCache
}

func NewRunner(db Database) *Runner {
	return &Runner{
		db:    db,
		stmts: cache.NewStatementCache(256),
	}
}

// Query builds b and executes the resulting statement.
func (r *Runner) Query(ctx context.Context, b *query.Builder) (Rows, error) {
	sql, args, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.db.QueryContext(ctx, sql, args...)
}

// Exec builds b and executes it without returning rows. For database/sql
// targets the prepared statement is cached and reused across calls.
func (r *Runner) Exec(ctx context.Context, b *query.Builder) (Result, error) {
	text, args, err := b.Build()
	if err != nil {
		return nil, err
	}

	if sqlDB, ok := r.db.(*SQLDatabase); ok {
		stmt, err := r.stmts.GetOrPrepare(utils.FingerprintString(text), sqlDB.DB(), text)
		if err != nil {
			return nil, err
		}
		return stmt.ExecContext(ctx, args...)
	}

	return r.db.Exec(text, args...)
}

// Close releases the prepared-statement cache; the Database itself stays
// open.
func (r *Runner) Close() {
	r.stmts.Purge()
}
