package cmd

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestMove_Help(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"move", "--help"})
	err := rootCmd.Execute()
	// Reset args after test to avoid state leakage
	rootCmd.SetArgs([]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !containsAll(out, []string{"Usage:", "move [table]", "--batch-size", "--action"}) {
		t.Errorf("expected help output for move, got: %s", out)
	}
}

// TestSetupAndMove_SQLite runs setup then move against a real sqlite file.
func TestSetupAndMove_SQLite(t *testing.T) {
	dir := t.TempDir()
	dbFile := filepath.Join(dir, "source.db")
	script := filepath.Join(dir, "sqldump.sql")
	output := filepath.Join(dir, "output.csv")
	if err := os.WriteFile(script, []byte(`
CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT);
INSERT INTO users VALUES (1, 'a');
INSERT INTO users VALUES (2, 'b');
INSERT INTO users VALUES (3, 'c');
`), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	if err := os.WriteFile(output, []byte("stale\n"), 0o644); err != nil {
		t.Fatalf("failed to write output: %v", err)
	}
	t.Setenv("DBMOVE_OUTPUT", output)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"setup", "--driver", "sqlite3", "--database", dbFile, "--clean-output", script})
	err := rootCmd.Execute()
	rootCmd.SetArgs([]string{})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("expected --clean-output to remove %s", output)
	}

	buf.Reset()
	rootCmd.SetArgs([]string{"move", "--driver", "sqlite3", "--database", dbFile, "--batch-size", "2", "--action", "delete", "users"})
	err = rootCmd.Execute()
	rootCmd.SetArgs([]string{})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if !containsAll(buf.String(), []string{"Copied users to " + output, "3 rows", "Deleted all rows from 'users'."}) {
		t.Errorf("unexpected move output: %s", buf.String())
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "id;name\n1;a\n2;b\n3;c\n" {
		t.Errorf("unexpected output file: %q", string(data))
	}

	db, err := sql.Open("sqlite3", dbFile)
	if err != nil {
		t.Fatalf("failed to open sqlite3: %v", err)
	}
	defer db.Close()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected users to be empty, got %d rows", n)
	}
}
