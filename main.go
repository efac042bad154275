// dbmove moves the rows of a database table into a ';' delimited text file.
//
// Usage:
//
//	dbmove move [--output <file>] [--batch-size <n>] [--action delete|drop|none] <table>
//	  Copy the table into the file, validate, then clear the source
//	dbmove export [--output <file>] [--batch-size <n>] <table>
//	  Copy the table into the file and validate, leaving the source alone
//	dbmove fields <table>
//	  Print the header line an export would write
//	dbmove setup [--clean-output] <script.sql>
//	  Run a SQL script, e.g. to load fixtures
package main

import (
	"dbmove/cmd"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	cmd.Execute()
}
