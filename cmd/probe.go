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
	"github.com/swimroster/memimport/internal/ioimport"
	"github.com/swimroster/memimport/pkg/config"
)

// getProbeCmd returns the probe command.
func getProbeCmd() *cobra.Command {
	var backend string

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Check the connection to the members table",
		Long: `Connect to the configured backend and read at most one row of the
members table. Nothing is written.

Examples:
  memimport probe
  memimport probe -b postgres`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("backend") {
				cfg.Update([]config.Option{config.OptImportBackend(backend)})
			}
			err := runProbe(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	probeCmd.Flags().StringVarP(
		&backend, "backend", "b", "",
		"backend to probe: rest or postgres",
	)

	return probeCmd
}

func runProbe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := cfg.ValidateService(); err != nil {
		return err
	}

	st, err := connectStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	return ioimport.Probe(ctx, st, cmd.OutOrStdout())
}
