// Package importer defines the import driver contract: rows are read in
// file order, transformed into member records and inserted one at a time.
package importer

import (
	"context"
	"time"

	"github.com/swimroster/memimport/pkg/member"
)

// Importer runs one import over a row source.
type Importer interface {
	// Import probes the store and then processes every row once.
	// Row failures are reported and counted but do not stop the run;
	// a non-nil error means the run was aborted (probe failure, read
	// failure, cancellation).
	Import(ctx context.Context, rows RowSource) (Summary, error)
}

// Row is one data row of the export together with its 0-based position.
type Row interface {
	member.Row
	Index() int
}

// RowSource yields rows in file order. Next returns io.EOF after the last
// row. A per-row read problem is returned together with a non-nil Row so
// that the driver can report it under the right index.
type RowSource interface {
	Next() (Row, error)
}

// FailureKind tells why a row was not imported.
type FailureKind int

const (
	// UnknownFailure is never assigned to a counted row.
	UnknownFailure FailureKind = iota
	// MissingField means a required name is absent or empty.
	MissingField
	// MalformedField means a value could not be converted.
	MalformedField
	// MalformedRow means the CSV record itself could not be read.
	MalformedRow
	// InsertFailure means the service rejected the record or the call
	// failed.
	InsertFailure
)

var failureKindNames = map[FailureKind]string{
	UnknownFailure: "unknown",
	MissingField:   "missing_field",
	MalformedField: "malformed_field",
	MalformedRow:   "malformed_row",
	InsertFailure:  "insert_failure",
}

func (k FailureKind) String() string {
	return failureKindNames[k]
}

// Summary describes a finished import.
type Summary struct {
	// Total is the number of data rows seen.
	Total int
	// Inserted is the number of rows accepted by the store, or rows that
	// passed the transformation in a dry run.
	Inserted int
	// Failed is the number of rows that were skipped.
	Failed int
	// Failures counts skipped rows by reason.
	Failures map[FailureKind]int
	// Duration is the wall time of the run.
	Duration time.Duration
}
