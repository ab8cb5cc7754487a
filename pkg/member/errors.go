package member

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// MissingFieldError creates an error for a required column that is
// absent from the file or empty in the row.
func MissingFieldError(column string) error {
	msg := "Required value is missing in column <em>%s</em>"
	vars := []any{column}

	return &gn.Error{
		Code: errcode.RowMissingFieldError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("missing value in column %q", column),
	}
}

// MalformedFieldError creates an error for a value that cannot be
// converted to its stored form.
func MalformedFieldError(column, value string, err error) error {
	msg := "Cannot parse <em>%s</em> in column <em>%s</em>"
	vars := []any{value, column}

	return &gn.Error{
		Code: errcode.RowMalformedFieldError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("cannot parse %q in column %q as MM/DD/YYYY: %w",
			value, column, err),
	}
}
