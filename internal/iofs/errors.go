package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// CreateDirError reports a configuration or log directory that could
// not be created.
func CreateDirError(dir string, err error) error {
	return pathError(errcode.CreateDirError,
		"Cannot create directory <em>%s</em>", dir, "create directory", err)
}

// CopyFileError reports a config.yaml template that could not be written.
func CopyFileError(file string, err error) error {
	return pathError(errcode.CopyFileError,
		"Cannot write config file <em>%s</em>", file, "write config file", err)
}

// ReadFileError reports a .env or config.yaml file that exists but
// cannot be read or parsed.
func ReadFileError(path string, err error) error {
	return pathError(errcode.ReadFileError,
		"Cannot read <em>%s</em>", path, "read file", err)
}

// pathError names the exported constructor's caller in the wrapped error.
func pathError(
	code gn.ErrorCode,
	msg, path, action string,
	err error,
) error {
	caller := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		caller = runtime.FuncForPC(pc).Name()
	}
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("%s: cannot %s %s: %w", caller, action, path, err),
	}
}
