package dbexport

import (
	"context"
	"database/sql"
)

// Rows is a minimal interface for *sql.Rows and test wrappers
// Used for dependency injection and testability in the batch reader.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Columns() ([]string, error)
	Close() error
	Err() error
}

// Querier is the query capability a session runs against.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Row is one result row: column names in result set order and the scanned values.
type Row struct {
	Columns []string
	Values  []any
}

// Batch is the result of one paginated query.
type Batch struct {
	Offset int
	Limit  int
	Rows   []Row
}

// Len returns the number of rows in the batch.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Rows)
}

// Short reports whether the batch signals end-of-table: fewer rows than requested.
// Unbounded batches (Limit <= 0) are always terminal.
func (b *Batch) Short() bool {
	if b.Limit <= 0 {
		return true
	}
	return b.Len() < b.Limit
}
