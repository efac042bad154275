package dbexport

import (
	"context"
	"fmt"
	"strings"
)

// Action is the destructive step run after a completed export.
type Action string

const (
	ActionNone   Action = "none"
	ActionDelete Action = "delete"
	ActionDrop   Action = "drop"
)

// ParseAction parses a user supplied action name.
func ParseAction(s string) (Action, error) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionNone, ActionDelete, ActionDrop:
		return a, nil
	case "":
		return ActionNone, nil
	default:
		return "", fmt.Errorf("unknown action %q: expected one of none, delete, drop", s)
	}
}

// DropTable drops table. Dropping a table that no longer exists is an error.
func DropTable(ctx context.Context, q Querier, table string) error {
	stmt := fmt.Sprintf("DROP TABLE %s", table)
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		return &QueryError{Query: stmt, Err: err}
	}
	return nil
}

// DeleteRows deletes every row of table.
func DeleteRows(ctx context.Context, q Querier, table string) error {
	stmt := fmt.Sprintf("DELETE FROM %s", table)
	if _, err := q.ExecContext(ctx, stmt); err != nil {
		return &QueryError{Query: stmt, Err: err}
	}
	return nil
}

// Commit runs action against table. It performs no checks of its own: callers
// must only reach it after a session completed.
func Commit(ctx context.Context, q Querier, table string, action Action) error {
	switch action {
	case ActionNone, "":
		return nil
	case ActionDelete:
		return DeleteRows(ctx, q, table)
	case ActionDrop:
		return DropTable(ctx, q, table)
	default:
		return fmt.Errorf("unknown action %q", action)
	}
}
