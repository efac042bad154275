package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"dbmove/dbexport"

	"github.com/go-sql-driver/mysql"
)

type wrapErr struct{ inner error }

func (w wrapErr) Error() string { return "wrap: " + w.inner.Error() }
func (w wrapErr) Unwrap() error { return w.inner }

type customErr struct{}

func (c customErr) Error() string { return "definitely not a table error" }

func TestIsInvalidTableError_Nil(t *testing.T) {
	if isInvalidTableError(nil) {
		t.Error("expected false for nil error")
	}
}

func TestIsInvalidTableError_MySQLNumber(t *testing.T) {
	err := &dbexport.QueryError{
		Query: "SELECT * FROM nope LIMIT 1 OFFSET 0",
		Err:   &mysql.MySQLError{Number: 1146, Message: "Table 'cego.nope' is missing"},
	}
	if !isInvalidTableError(err) {
		t.Error("expected true for ER_NO_SUCH_TABLE")
	}
}

func TestIsInvalidTableError_MatchesPatterns(t *testing.T) {
	messages := []string{
		"Error 1146 (42S02): Table 'cego.nope' doesn't exist",
		"no such table: nope",
		"Catalog Error: Table with name nope does not exist!",
		"Error 1051 (42S02): Unknown table 'cego.nope'",
	}
	for _, msg := range messages {
		if !isInvalidTableError(errors.New(msg)) {
			t.Errorf("expected true for: %q", msg)
		}
	}
}

func TestIsInvalidTableError_Unwrap(t *testing.T) {
	base := errors.New("no such table: users")
	wrapped := fmt.Errorf("wrap1: %w", wrapErr{base})
	if !isInvalidTableError(wrapped) {
		t.Error("expected true for wrapped error")
	}
	if isInvalidTableError(wrapErr{customErr{}}) {
		t.Error("expected false for wrapped custom error")
	}
}

func TestIsInvalidTableError_QuietOnDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if isInvalidTableError(errors.New("disk full")) {
		t.Error("expected false for unrelated error")
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing on the default logger, got: %q", buf.String())
	}
}

func TestWithTableHint(t *testing.T) {
	base := errors.New("no such table: users")
	err := withTableHint(base, "users")
	if !errors.Is(err, base) {
		t.Errorf("expected hint to wrap the original error, got: %v", err)
	}
	if !strings.Contains(err.Error(), `check that table "users" exists`) {
		t.Errorf("expected hint, got: %v", err)
	}
	other := errors.New("disk full")
	if withTableHint(other, "users") != other {
		t.Error("expected unrelated errors to pass through unchanged")
	}
	if withTableHint(nil, "users") != nil {
		t.Error("expected nil to stay nil")
	}
}
