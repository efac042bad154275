package cmd

import (
	"os"

	"dbmove/config"

	"github.com/spf13/cobra"
)

// Persistent flags shared by every command that talks to the database.
var (
	flagConfig       string
	flagDriver       string
	flagDSN          string
	flagHost         string
	flagPort         int
	flagUser         string
	flagPassword     string
	flagDatabase     string
	flagMaxOpenConns int
	flagDefaultsFile string
	flagLogLevel     string
	flagLogFormat    string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML configuration file")
	pf.StringVar(&flagDriver, "driver", "", "Database driver: mysql, sqlite3, duckdb (env: DBMOVE_DRIVER)")
	pf.StringVar(&flagDSN, "dsn", "", "Data source name, overrides the individual connection flags (env: DBMOVE_DSN)")
	pf.StringVar(&flagHost, "host", "", "MySQL server hostname or IP (env: DBMOVE_HOST)")
	pf.IntVar(&flagPort, "port", 0, "MySQL server port (env: DBMOVE_PORT)")
	pf.StringVar(&flagUser, "user", "", "MySQL username (env: DBMOVE_USER)")
	pf.StringVar(&flagPassword, "password", "", "MySQL password (env: DBMOVE_PASSWORD)")
	pf.StringVar(&flagDatabase, "database", "", "Database name, or database file for sqlite3/duckdb (env: DBMOVE_DATABASE)")
	pf.IntVar(&flagMaxOpenConns, "max-open-conns", 0, "Connection pool limit (env: DBMOVE_MAX_OPEN_CONNS)")
	pf.StringVar(&flagDefaultsFile, "defaults-file", "", "my.cnf style file with a [client] section (env: DBMOVE_DEFAULTS_FILE)")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (env: DBMOVE_LOG_LEVEL)")
	pf.StringVar(&flagLogFormat, "log-format", "", "Log format: text, json (env: DBMOVE_LOG_FORMAT)")
}

// loadConfig builds the configuration: defaults, YAML file, defaults file,
// environment, then any flag set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	defaultsFile := cfg.Database.DefaultsFile
	if v := os.Getenv("DBMOVE_DEFAULTS_FILE"); v != "" {
		defaultsFile = v
	}
	if flagDefaultsFile != "" {
		defaultsFile = flagDefaultsFile
	}
	if err := cfg.LoadDefaultsFile(defaultsFile); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	str := func(name, val string, dst *string) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	num := func(name string, val int, dst *int) {
		if flags.Changed(name) {
			*dst = val
		}
	}
	str("driver", flagDriver, &cfg.Database.Driver)
	str("dsn", flagDSN, &cfg.Database.DSN)
	str("host", flagHost, &cfg.Database.Host)
	num("port", flagPort, &cfg.Database.Port)
	str("user", flagUser, &cfg.Database.User)
	str("password", flagPassword, &cfg.Database.Password)
	str("database", flagDatabase, &cfg.Database.Database)
	num("max-open-conns", flagMaxOpenConns, &cfg.Database.MaxOpenConns)
	str("log-level", flagLogLevel, &cfg.Logging.Level)
	str("log-format", flagLogFormat, &cfg.Logging.Format)
	return cfg, nil
}
