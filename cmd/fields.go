package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"dbmove/dbexport"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <table>",
	Short: "Print the header line an export of the table would write",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Logging, os.Stderr)
		return withDB(cfg, logger, func(ctx context.Context, db *sql.DB) error {
			probe, err := dbexport.FetchBatch(ctx, db, table, 1, 0)
			if err != nil {
				return withTableHint(err, table)
			}
			if probe.Len() == 0 {
				return fmt.Errorf("%s: %w", table, dbexport.ErrEmptySource)
			}
			fmt.Fprint(cmd.OutOrStdout(), dbexport.FormatHeader(probe.Rows[0]))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
