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
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/swimroster/memimport/internal/iocsv"
	"github.com/swimroster/memimport/internal/ioimport"
	"github.com/swimroster/memimport/internal/iostore"
	"github.com/swimroster/memimport/pkg/config"
	"github.com/swimroster/memimport/pkg/store"
)

// importFlags holds the values of the import command flags.
type importFlags struct {
	file    string
	orgID   string
	backend string
	table   string
	dryRun  bool
}

// getImportCmd returns the import command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getImportCmd() *cobra.Command {
	var flags importFlags

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import members from a CSV export",
		Long: `Import club members from a CSV export into the members table.

This command:
  1. Checks that the organization ID and service credentials are set
  2. Connects to the service and reads one row of the members table
  3. Reads the CSV file row by row and inserts one member per row
  4. Prints one line per row and "Import finished!" at the end

Recognized CSV columns:
  Memb. First Name   required
  Memb. Last Name    required
  Gender             optional, empty means unknown
  Birthday           optional, MM/DD/YYYY

Rows with missing names, unparsable birthdays or rejected by the service
are reported as "Error on row <n>: ..." and skipped. Row numbers start
at 0 and count data rows only.

Examples:
  # Import members.csv from the working directory
  memimport import

  # Import a specific file for an organization
  memimport import -f export.csv -o 3f1c...

  # Check the file without writing anything
  memimport import --dry-run

  # Insert through a direct PostgreSQL connection
  memimport import -b postgres`,
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runImport(cmd, flags)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	importCmd.Flags().StringVarP(
		&flags.file, "file", "f", "",
		"path to the CSV export (default members.csv)",
	)
	importCmd.Flags().StringVarP(
		&flags.orgID, "org-id", "o", "",
		"organization ID stamped on every member",
	)
	importCmd.Flags().StringVarP(
		&flags.backend, "backend", "b", "",
		"backend to write to: rest or postgres",
	)
	importCmd.Flags().StringVarP(
		&flags.table, "table", "t", "",
		"target table (default members)",
	)
	importCmd.Flags().BoolVarP(
		&flags.dryRun, "dry-run", "n", false,
		"validate rows without connecting or inserting",
	)

	return importCmd
}

func runImport(cmd *cobra.Command, flags importFlags) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	cfg.Update(flags.options(cmd))

	if err := cfg.Validate(); err != nil {
		return err
	}

	reader, err := iocsv.Open(cfg.Import.CSVPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	var st store.Store
	if !cfg.Import.DryRun {
		st, err = connectStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()
	}

	imp := ioimport.New(cfg, st, cmd.OutOrStdout())
	_, err = imp.Import(ctx, reader)
	return err
}

// options builds config options from explicitly set flags.
func (f importFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("file") {
		res = append(res, config.OptImportCSVPath(f.file))
	}
	if cmd.Flags().Changed("org-id") {
		res = append(res, config.OptImportOrgID(f.orgID))
	}
	if cmd.Flags().Changed("backend") {
		res = append(res, config.OptImportBackend(f.backend))
	}
	if cmd.Flags().Changed("table") {
		res = append(res, config.OptImportTable(f.table))
	}
	if cmd.Flags().Changed("dry-run") {
		res = append(res, config.OptImportDryRun(f.dryRun))
	}
	return res
}

// connectStore creates and connects the store of the configured
// backend.
func connectStore(
	ctx context.Context,
	cfg *config.Config,
) (store.Store, error) {
	st, err := iostore.New(cfg.Import.Backend)
	if err != nil {
		return nil, err
	}
	if err = st.Connect(ctx, cfg); err != nil {
		return nil, err
	}
	return st, nil
}
