// Package config loads connection and move settings for dbmove.
//
// Values are layered: built-in defaults, then an optional YAML file, then an
// optional my.cnf style defaults file (mysql only), then DBMOVE_* environment
// variables (a .env file in the working directory is honoured). Command line
// flags are applied last by the cmd package.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-ini/ini"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported database/sql driver names.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
	DriverDuckDB = "duckdb"
)

// Config is the complete dbmove configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Move     MoveConfig     `yaml:"move"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig holds connection settings for the source database.
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	DSN      string `yaml:"dsn"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	// Database is the schema name for mysql and the database file for sqlite3 and duckdb.
	Database     string `yaml:"database"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	DefaultsFile string `yaml:"defaults_file"`
}

// MoveConfig holds what to move and where.
type MoveConfig struct {
	Table     string `yaml:"table"`
	Output    string `yaml:"output"`
	BatchSize int    `yaml:"batch_size"`
	Action    string `yaml:"action"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with the defaults of the original tool.
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:       DriverMySQL,
			Host:         "localhost",
			Port:         3306,
			User:         "root",
			MaxOpenConns: 25,
		},
		Move: MoveConfig{
			Output:    "output.csv",
			BatchSize: 10,
			Action:    "delete",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path, if any.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// LoadDefaultsFile overlays the [client] section of a my.cnf style file.
func (c *Config) LoadDefaultsFile(path string) error {
	if path == "" {
		return nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("error reading defaults file: %w", err)
	}
	if !f.HasSection("client") {
		return nil
	}
	client := f.Section("client")
	if v := client.Key("host").String(); v != "" {
		c.Database.Host = v
	}
	if v := client.Key("port").MustInt(0); v != 0 {
		c.Database.Port = v
	}
	if v := client.Key("user").String(); v != "" {
		c.Database.User = v
	}
	if client.HasKey("password") {
		c.Database.Password = client.Key("password").String()
	}
	if v := client.Key("database").String(); v != "" {
		c.Database.Database = v
	}
	return nil
}

// ApplyEnv overlays DBMOVE_* environment variables, loading .env first.
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(name); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	var errs []string
	num := func(name string, dst *int) {
		v, ok := os.LookupEnv(name)
		if !ok || strings.TrimSpace(v) == "" {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s=%q is not a number", name, v))
			return
		}
		*dst = n
	}
	str("DBMOVE_DRIVER", &c.Database.Driver)
	str("DBMOVE_DSN", &c.Database.DSN)
	str("DBMOVE_HOST", &c.Database.Host)
	num("DBMOVE_PORT", &c.Database.Port)
	str("DBMOVE_USER", &c.Database.User)
	if v, ok := os.LookupEnv("DBMOVE_PASSWORD"); ok {
		c.Database.Password = v
	}
	str("DBMOVE_DATABASE", &c.Database.Database)
	num("DBMOVE_MAX_OPEN_CONNS", &c.Database.MaxOpenConns)
	str("DBMOVE_DEFAULTS_FILE", &c.Database.DefaultsFile)
	str("DBMOVE_TABLE", &c.Move.Table)
	str("DBMOVE_OUTPUT", &c.Move.Output)
	num("DBMOVE_BATCH_SIZE", &c.Move.BatchSize)
	str("DBMOVE_ACTION", &c.Move.Action)
	str("DBMOVE_LOG_LEVEL", &c.Logging.Level)
	str("DBMOVE_LOG_FORMAT", &c.Logging.Format)
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, ", "))
	}
	return nil
}

// Validate checks the connection settings, listing every missing value at once.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverMySQL, DriverSQLite, DriverDuckDB:
	default:
		return fmt.Errorf("unsupported driver %q: expected one of %s, %s, %s", c.Driver, DriverMySQL, DriverSQLite, DriverDuckDB)
	}
	if c.DSN != "" {
		return nil
	}
	missing := []string{}
	if c.Driver == DriverMySQL {
		if c.Host == "" {
			missing = append(missing, "DBMOVE_HOST (or --host)")
		}
		if c.User == "" {
			missing = append(missing, "DBMOVE_USER (or --user)")
		}
	}
	if c.Database == "" {
		missing = append(missing, "DBMOVE_DATABASE (or --database)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required connection parameters: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ConnString returns the data source name to pass to sql.Open.
func (c *DatabaseConfig) ConnString() string {
	if c.DSN != "" {
		return c.DSN
	}
	if c.Driver != DriverMySQL {
		return c.Database
	}
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.Database
	return mc.FormatDSN()
}
