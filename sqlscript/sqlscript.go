// Package sqlscript replays SQL dump files, one statement at a time.
//
// Statements are separated by ';'. There is no awareness of quoting, so a
// semicolon inside a string literal splits the statement. It is meant for
// fixture and setup scripts, not arbitrary dumps.
package sqlscript

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
)

// Execer executes a single statement.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// StatementError reports which statement of a script failed.
type StatementError struct {
	Index     int
	Statement string
	Err       error
}

func (e *StatementError) Error() string {
	return fmt.Sprintf("statement %d (%s): %v", e.Index+1, abbreviate(e.Statement, 60), e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// Split splits script on ';' and drops blank statements.
func Split(script string) []string {
	var stmts []string
	for _, part := range strings.Split(script, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// Exec runs every statement of script in order, stopping at the first failure.
// It returns the number of statements executed.
func Exec(ctx context.Context, db Execer, script string) (int, error) {
	stmts := Split(script)
	for i, stmt := range stmts {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return i, &StatementError{Index: i, Statement: stmt, Err: err}
		}
	}
	return len(stmts), nil
}

// ExecFile reads path and runs it with Exec.
func ExecFile(ctx context.Context, db Execer, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("error reading script file: %w", err)
	}
	return Exec(ctx, db, string(data))
}

func abbreviate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
