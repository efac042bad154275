package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"dbmove/config"
	"dbmove/dbexport"

	"github.com/spf13/cobra"
)

var (
	moveOutput    string
	moveBatchSize int
	moveAction    string
)

var moveCmd = &cobra.Command{
	Use:   "move [table]",
	Short: "Copy a table into a file, then delete its rows or drop it",
	Long: `Copy every row of the table into a ';' delimited file, validating each batch
against the file, then run the action (delete, drop or none). The action only
runs when every batch was written and validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMove(cmd, args, true)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [table]",
	Short: "Copy a table into a file without touching the source",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMove(cmd, args, false)
	},
}

func init() {
	for _, c := range []*cobra.Command{moveCmd, exportCmd} {
		c.Flags().StringVarP(&moveOutput, "output", "o", "", "Output file (env: DBMOVE_OUTPUT, default output.csv)")
		c.Flags().IntVarP(&moveBatchSize, "batch-size", "b", 0, "Rows per SELECT, 0 or less reads the whole table at once (env: DBMOVE_BATCH_SIZE, default 10)")
		rootCmd.AddCommand(c)
	}
	moveCmd.Flags().StringVar(&moveAction, "action", "", "What to do with the source after a validated copy: delete, drop, none (env: DBMOVE_ACTION, default delete)")
}

// moveOptions resolves the table and move settings from args, flags and cfg.
func moveOptions(cmd *cobra.Command, args []string, cfg *config.Config, destructive bool) (dbexport.Options, error) {
	mc := cfg.Move
	if len(args) > 0 {
		mc.Table = args[0]
	}
	if cmd.Flags().Changed("output") {
		mc.Output = moveOutput
	}
	if cmd.Flags().Changed("batch-size") {
		mc.BatchSize = moveBatchSize
	}
	if cmd.Flags().Changed("action") {
		mc.Action = moveAction
	}
	if mc.Table == "" {
		return dbexport.Options{}, errors.New("missing required table argument (or DBMOVE_TABLE)")
	}
	action := dbexport.ActionNone
	if destructive {
		var err error
		if action, err = dbexport.ParseAction(mc.Action); err != nil {
			return dbexport.Options{}, err
		}
	}
	return dbexport.Options{
		Table:     mc.Table,
		Output:    mc.Output,
		BatchSize: mc.BatchSize,
		Action:    action,
	}, nil
}

func runMove(cmd *cobra.Command, args []string, destructive bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := moveOptions(cmd, args, cfg, destructive)
	if err != nil {
		return err
	}
	logger := newLogger(cfg.Logging, os.Stderr)
	opts.Logger = logger
	out := cmd.OutOrStdout()
	return withDB(cfg, logger, func(ctx context.Context, db *sql.DB) error {
		res, err := dbexport.Move(ctx, db, opts)
		if res != nil {
			fmt.Fprintf(out, "Copied %s to %s (%d rows, %d batches) in %s.\n", res.Table, res.Output, res.Rows, res.Batches, res.Duration)
		}
		if err != nil {
			return withTableHint(err, opts.Table)
		}
		switch res.Action {
		case dbexport.ActionDrop:
			fmt.Fprintf(out, "Table '%s' dropped.\n", opts.Table)
		case dbexport.ActionDelete:
			fmt.Fprintf(out, "Deleted all rows from '%s'.\n", opts.Table)
		}
		return nil
	})
}
