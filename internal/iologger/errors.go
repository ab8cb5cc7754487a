package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// CreateLogFileError reports a log file that cannot be created.
func CreateLogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot create log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot create log file %s: %w", path, err),
	}
}
