package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitFunc is swapped in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "dbmove",
	Short: "Move a database table into a delimited text file",
	Long: `dbmove copies every row of a table into a ';' delimited file, in batches if
requested, checks that each copied row made it into the file, and only then
deletes the rows or drops the table.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
