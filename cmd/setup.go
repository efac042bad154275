package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"dbmove/sqlscript"

	"github.com/spf13/cobra"
)

var setupCleanOutput bool

var setupCmd = &cobra.Command{
	Use:   "setup <script.sql>",
	Short: "Run a ';' separated SQL script against the database",
	Long: `Run every statement of a SQL script in order, stopping at the first failure.
Meant for loading fixtures before a trial move. With --clean-output the
configured output file is removed first.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg.Logging, os.Stderr)
		if setupCleanOutput {
			if err := os.Remove(cfg.Move.Output); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("error removing old output file: %w", err)
			}
		}
		return withDB(cfg, logger, func(ctx context.Context, db *sql.DB) error {
			n, err := sqlscript.ExecFile(ctx, db, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Executed SQL dump (%d statements).\n", n)
			return nil
		})
	},
}

func init() {
	setupCmd.Flags().BoolVar(&setupCleanOutput, "clean-output", false, "Remove the configured output file before running the script")
	rootCmd.AddCommand(setupCmd)
}
