package dbexport

import (
	"context"
	"fmt"
)

// BuildSelectQuery builds the SELECT for one batch. A limit <= 0 selects the whole table.
// The table name is interpolated as given.
func BuildSelectQuery(table string, limit, offset int) string {
	if limit <= 0 {
		return fmt.Sprintf("SELECT * FROM %s", table)
	}
	return fmt.Sprintf("SELECT * FROM %s LIMIT %d OFFSET %d", table, limit, offset)
}

// FetchBatch runs one paginated query against q and returns its rows.
// The result set is fully read and closed before returning, which hands the
// connection back to the pool.
func FetchBatch(ctx context.Context, q Querier, table string, limit, offset int) (*Batch, error) {
	query := BuildSelectQuery(table, limit, offset)
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	scanned, err := ScanRows(rows)
	if err != nil {
		return nil, &QueryError{Query: query, Err: err}
	}
	return &Batch{Offset: offset, Limit: limit, Rows: scanned}, nil
}
