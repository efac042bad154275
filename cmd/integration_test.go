//go:build integration
// +build integration

package cmd

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"dbmove/dbexport"
	"dbmove/sqlscript"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

// Integration test: requires a running MySQL instance and MYSQL_DSN set.
func TestIntegration_MoveMySQL(t *testing.T) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		t.Skip("MYSQL_DSN not set; skipping integration test")
	}
	db, err := sql.Open("mysql", dsn)
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))

	_, err = sqlscript.Exec(ctx, db, `
DROP TABLE IF EXISTS dbmove_users;
CREATE TABLE dbmove_users (id INT NOT NULL PRIMARY KEY, name VARCHAR(32));
INSERT INTO dbmove_users VALUES (1, 'a'), (2, 'b'), (3, 'c');
`)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "output.csv")
	res, err := dbexport.Move(ctx, db, dbexport.Options{Table: "dbmove_users", Output: out, BatchSize: 2, Action: dbexport.ActionDrop})
	require.NoError(t, err)
	require.Equal(t, int64(3), res.Rows)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "id;name\n1;a\n2;b\n3;c\n", string(data))

	err = dbexport.DropTable(ctx, db, "dbmove_users")
	require.True(t, isInvalidTableError(err), "expected unknown table error, got %v", err)
}
