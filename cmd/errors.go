package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// errNoSuchTable is MySQL's ER_NO_SUCH_TABLE.
const errNoSuchTable = 1146

// isInvalidTableError checks recursively for substrings indicating a missing/invalid table in any wrapped error.
func isInvalidTableError(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == errNoSuchTable {
		return true
	}
	var patterns = []string{
		"doesn't exist",
		"does not exist",
		"no such table",
		"unknown table",
		"table with name",
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		errStr := strings.ToLower(e.Error())
		for _, pat := range patterns {
			if strings.Contains(errStr, pat) {
				return true
			}
		}
	}
	return false
}

// withTableHint adds a hint to errors caused by an unknown table.
func withTableHint(err error, table string) error {
	if err == nil || !isInvalidTableError(err) {
		return err
	}
	return fmt.Errorf("%w\n\ncheck that table %q exists and is spelled correctly; qualify it with the schema name if it lives in another database (for example: schema.table)", err, table)
}
