package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// CancelledError creates an error for an import interrupted between
// rows.
func CancelledError(processed int, err error) error {
	msg := "Import was cancelled after <em>%d</em> rows"
	vars := []any{processed}

	return &gn.Error{
		Code: errcode.ImportCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("import cancelled: %w", err),
	}
}

// NoStoreError is returned when a non dry-run import has no store.
func NoStoreError() error {
	msg := "Import needs a connected store unless it is a dry run"

	return &gn.Error{
		Code: errcode.ServiceNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("no store for import"),
	}
}
