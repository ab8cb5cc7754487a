package iocsv

import (
	"encoding/csv"
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// OpenError creates an error for a CSV file that cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open member export <em>%s</em>

<em>How to fix:</em>
  1. Run memimport from the directory that contains the file
  2. Or point to it with <em>--file</em>`
	vars := []any{path}

	return &gn.Error{
		Code: errcode.CSVOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open %s: %w", path, err),
	}
}

// MissingHeaderError creates an error for an empty CSV file.
func MissingHeaderError() error {
	msg := "The member export is empty, a header row is required"

	return &gn.Error{
		Code: errcode.CSVMissingHeaderError,
		Msg:  msg,
		Err:  fmt.Errorf("missing header"),
	}
}

// ReadError creates an error for an I/O failure while reading the file.
func ReadError(err error) error {
	msg := "Cannot read the member export"

	return &gn.Error{
		Code: errcode.CSVReadError,
		Msg:  msg,
		Err:  fmt.Errorf("cannot read CSV: %w", err),
	}
}

// MalformedRowError creates an error for a record that is not valid CSV.
func MalformedRowError(idx int, err *csv.ParseError) error {
	msg := "Row <em>%d</em> is not valid CSV (line %d)"
	vars := []any{idx, err.Line}

	return &gn.Error{
		Code: errcode.RowMalformedError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("malformed CSV record: %w", err),
	}
}
