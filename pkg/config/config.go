// Package config provides configuration management for memimport.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest):
// CLI flags > env vars > .env file > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid as a value, but an import
// also needs an organization ID and service credentials (see Validate)
// - All mutations go through Option functions
// - Invalid options are rejected with gn.Warn() and the old value stays
// - ToOptions() converts persistent fields (those in config.yaml)
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Service: url, key, schema
//   - Database: host, port, user, password, database, ssl_mode
//   - Import: org_id, csv_path, table, backend
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.DryRun
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MEMIMPORT_ prefix with underscores for nesting:
//
//	MEMIMPORT_SERVICE_URL=https://xyz.supabase.co
//	MEMIMPORT_SERVICE_KEY=...
//	MEMIMPORT_IMPORT_ORG_ID=...
//	MEMIMPORT_LOG_LEVEL=debug
//
// The names used by the original import script are accepted as well:
// SUPABASE_URL, SUPABASE_KEY and ORG_ID.
package config

// Config represents the complete memimport configuration.
type Config struct {
	// Service contains settings of the hosted REST (PostgREST) endpoint.
	Service ServiceConfig `mapstructure:"service" yaml:"service"`

	// Database contains PostgreSQL connection settings, used by the
	// 'postgres' backend.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings of the import run.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// ServiceConfig describes the hosted backend reached over HTTP.
type ServiceConfig struct {
	// URL is the base endpoint of the service, for example
	// https://abcd.supabase.co. The REST path is appended to it.
	URL string `mapstructure:"url" yaml:"url"`

	// Key is the access credential. It is sent both as 'apikey' and as
	// a bearer token.
	Key string `mapstructure:"key" yaml:"key"`

	// Schema is the PostgreSQL schema exposed by the service.
	Schema string `mapstructure:"schema" yaml:"schema"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`
}

// ImportConfig contains settings of one import run.
type ImportConfig struct {
	// OrgID is stamped into the org_id column of every inserted record.
	OrgID string `mapstructure:"org_id" yaml:"org_id"`

	// CSVPath is the member export to read. Relative paths are resolved
	// from the working directory.
	CSVPath string `mapstructure:"csv_path" yaml:"csv_path"`

	// Table is the target table name.
	Table string `mapstructure:"table" yaml:"table"`

	// Backend selects how records reach the service.
	// Valid values: "rest", "postgres".
	Backend string `mapstructure:"backend" yaml:"backend"`

	// DryRun transforms rows and reports them without connecting to
	// the service.
	DryRun bool `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with default values.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Service: ServiceConfig{
			Schema: "public",
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "postgres",
			SSLMode:  "disable",
		},
		Import: ImportConfig{
			CSVPath: "members.csv",
			Table:   "members",
			Backend: "rest",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
