/*
Copyright © 2026 The memimport Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/swimroster/memimport/internal/iofs"
	"github.com/swimroster/memimport/internal/iologger"
	app "github.com/swimroster/memimport/pkg"
	"github.com/swimroster/memimport/pkg/config"
)

// EnvFile is read from the working directory before environment
// variables are bound. Values already in the environment win.
const EnvFile = ".env"

var (
	homeDir   string
	cfg       *config.Config
	logCloser io.Closer = nopCloser{}
)

// getRootCmd returns the root command with all subcommands attached.
// Extracted as a function to facilitate testing.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "memimport",
		Short:   "Memimport loads club member exports into the roster service",
		Long: `Memimport reads a member export (CSV) of a swimming club and inserts
every member into the "members" table of the hosted roster service.

Each row becomes one record stamped with the organization ID. Rows that
cannot be converted or that the service rejects are reported and skipped;
the rest of the file is still imported.

Backends:
  rest      the service REST API (SUPABASE_URL, SUPABASE_KEY)
  postgres  a direct PostgreSQL connection (database.* settings)

Configuration precedence (highest to lowest):
  1. Command line flags
  2. Environment variables (MEMIMPORT_*, SUPABASE_URL, SUPABASE_KEY, ORG_ID)
  3. .env file in the working directory
  4. Config file (~/.config/memimport/config.yaml)
  5. Built-in defaults`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "memimport version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for memimport")

	rootCmd.AddCommand(
		getImportCmd(),
		getProbeCmd(),
		getConfigCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = initLogging(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	envLoaded, err := iofs.LoadEnvFile(EnvFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = initLogging(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.SetDefault(slog.Default().With("run_id", uuid.NewString()))
	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"env_file", envLoaded,
		"command", cmd.Name(),
	)

	return nil
}

// initLogging replaces the default logger and closes the previous log
// file, if any.
func initLogging(logDir string, logCfg config.LogConfig) error {
	closer, err := iologger.Init(logDir, logCfg)
	if err != nil {
		return err
	}
	_ = logCloser.Close()
	logCloser = closer
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	defer func() { _ = logCloser.Close() }()
	return getRootCmd().Execute()
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	// When several names are given, the first one that is set wins.
	v.SetEnvPrefix("MEMIMPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Service configuration
	v.BindEnv("service.url", "MEMIMPORT_SERVICE_URL", "SUPABASE_URL")
	v.BindEnv("service.key", "MEMIMPORT_SERVICE_KEY", "SUPABASE_KEY")
	v.BindEnv("service.schema", "MEMIMPORT_SERVICE_SCHEMA")

	// Database configuration
	v.BindEnv("database.host", "MEMIMPORT_DATABASE_HOST")
	v.BindEnv("database.port", "MEMIMPORT_DATABASE_PORT")
	v.BindEnv("database.user", "MEMIMPORT_DATABASE_USER")
	v.BindEnv("database.password", "MEMIMPORT_DATABASE_PASSWORD")
	v.BindEnv("database.database", "MEMIMPORT_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "MEMIMPORT_DATABASE_SSL_MODE")

	// Import configuration
	v.BindEnv("import.org_id", "MEMIMPORT_IMPORT_ORG_ID", "ORG_ID")
	v.BindEnv("import.csv_path", "MEMIMPORT_IMPORT_CSV_PATH")
	v.BindEnv("import.table", "MEMIMPORT_IMPORT_TABLE")
	v.BindEnv("import.backend", "MEMIMPORT_IMPORT_BACKEND")

	// Log configuration
	v.BindEnv("log.level", "MEMIMPORT_LOG_LEVEL")
	v.BindEnv("log.format", "MEMIMPORT_LOG_FORMAT")
	v.BindEnv("log.destination", "MEMIMPORT_LOG_DESTINATION")

	v.AutomaticEnv()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
