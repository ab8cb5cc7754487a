// Package ioimport implements importer.Importer. It reads rows from a
// RowSource, turns them into member records and sends them to a store
// one at a time, reporting every row on a line-oriented writer.
// This is an impure I/O package.
package ioimport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/swimroster/memimport/pkg/config"
	"github.com/swimroster/memimport/pkg/errcode"
	"github.com/swimroster/memimport/pkg/importer"
	"github.com/swimroster/memimport/pkg/member"
	"github.com/swimroster/memimport/pkg/store"
)

// FinishedLine is printed after the last row.
const FinishedLine = "Import finished!"

type imp struct {
	cfg   *config.Config
	store store.Store
	out   io.Writer
}

// New creates an Importer. The store must be connected unless the
// configuration asks for a dry run, in which case it may be nil.
func New(
	cfg *config.Config,
	st store.Store,
	out io.Writer,
) importer.Importer {
	return &imp{cfg: cfg, store: st, out: out}
}

// rowResult is the outcome of one row.
type rowResult struct {
	index  int
	record member.Record
	kind   importer.FailureKind
	err    error
}

func (r rowResult) failed() bool {
	return r.err != nil
}

// Import probes the store and processes every row of rows.
func (m *imp) Import(
	ctx context.Context,
	rows importer.RowSource,
) (importer.Summary, error) {
	startTime := time.Now()
	res := importer.Summary{Failures: make(map[importer.FailureKind]int)}
	dryRun := m.cfg.Import.DryRun

	if !dryRun {
		if m.store == nil {
			return res, NoStoreError()
		}
		if err := Probe(ctx, m.store, m.out); err != nil {
			return res, err
		}
	}

	slog.Info("Starting import",
		"org_id", m.cfg.Import.OrgID,
		"dry_run", dryRun,
	)

	for {
		select {
		case <-ctx.Done():
			res.Duration = time.Since(startTime)
			return res, CancelledError(res.Total, ctx.Err())
		default:
		}

		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && row == nil {
			res.Duration = time.Since(startTime)
			return res, err
		}

		var rr rowResult
		if err != nil {
			rr = rowResult{
				index: row.Index(),
				kind:  importer.MalformedRow,
				err:   err,
			}
		} else {
			rr = m.processRow(ctx, row)
		}

		if rr.failed() && rr.kind == importer.InsertFailure &&
			ctx.Err() != nil {
			res.Duration = time.Since(startTime)
			return res, CancelledError(res.Total, ctx.Err())
		}

		res.Total++
		m.report(rr, &res)
	}

	fmt.Fprintln(m.out, FinishedLine)

	res.Duration = time.Since(startTime)
	logSummary(res, dryRun)
	return res, nil
}

// Probe reads at most one row from st and prints a single
// "Probe <table>: <n> row(s) <json>" line to out.
func Probe(ctx context.Context, st store.Store, out io.Writer) error {
	pr, err := st.Probe(ctx)
	if err != nil {
		return err
	}

	rows := pr.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	enc := gnfmt.GNjson{}
	bs, err := enc.Encode(rows)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Probe %s: %d row(s) %s\n",
		pr.Table, len(pr.Rows), strings.TrimSpace(string(bs)))
	slog.Info("Probe succeeded", "table", pr.Table, "rows", len(pr.Rows))
	return nil
}

// processRow transforms one row and, unless this is a dry run, inserts
// it. It never returns an error directly; failures travel inside
// rowResult.
func (m *imp) processRow(ctx context.Context, row importer.Row) rowResult {
	res := rowResult{index: row.Index()}

	rec, err := member.Transform(row, m.cfg.Import.OrgID)
	if err != nil {
		res.kind = transformKind(err)
		res.err = err
		return res
	}
	res.record = rec

	if m.cfg.Import.DryRun {
		return res
	}

	if err = m.store.Insert(ctx, rec); err != nil {
		res.kind = importer.InsertFailure
		res.err = err
	}
	return res
}

func (m *imp) report(rr rowResult, sum *importer.Summary) {
	if rr.failed() {
		sum.Failed++
		sum.Failures[rr.kind]++
		fmt.Fprintf(m.out, "Error on row %d: %s\n", rr.index, message(rr.err))
		slog.Warn("Row skipped",
			"row", rr.index,
			"kind", rr.kind.String(),
			"error", rr.err,
		)
		return
	}

	sum.Inserted++
	verb := "Inserted"
	if m.cfg.Import.DryRun {
		verb = "Valid"
	}
	fmt.Fprintf(m.out, "%s %s\n", verb, rr.record.FullName())
	slog.Debug("Row processed", "row", rr.index, "verb", verb)
}

func transformKind(err error) importer.FailureKind {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return importer.UnknownFailure
	}
	switch gnErr.Code {
	case errcode.RowMissingFieldError:
		return importer.MissingField
	case errcode.RowMalformedFieldError:
		return importer.MalformedField
	case errcode.RowMalformedError:
		return importer.MalformedRow
	default:
		return importer.UnknownFailure
	}
}

// message returns the plain text of err. For *gn.Error it is the wrapped
// error, the formatted Msg is meant for the terminal.
func message(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		return gnErr.Err.Error()
	}
	return err.Error()
}

func logSummary(sum importer.Summary, dryRun bool) {
	attrs := []any{
		"total", sum.Total,
		"inserted", sum.Inserted,
		"failed", sum.Failed,
		"dry_run", dryRun,
		"duration", gnfmt.TimeString(sum.Duration.Seconds()),
	}
	for kind, count := range sum.Failures {
		attrs = append(attrs, kind.String(), count)
	}
	slog.Info("Import finished", attrs...)

	verb := "inserted"
	if dryRun {
		verb = "valid"
	}
	gn.Info("<em>%s</em> of %s rows %s, %s skipped in %s",
		humanize.Comma(int64(sum.Inserted)),
		humanize.Comma(int64(sum.Total)),
		verb,
		humanize.Comma(int64(sum.Failed)),
		gnfmt.TimeString(sum.Duration.Seconds()),
	)
}
