package iorest

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// ConnectionError is returned when the REST client cannot be created.
func ConnectionError(rawURL string, err error) error {
	msg := `Cannot create a client for the service

<em>Service URL:</em> %s

<em>How to fix:</em>
  1. Check SUPABASE_URL (or service.url in config.yaml)
  2. It should look like https://<project>.supabase.co`
	vars := []any{rawURL}

	return &gn.Error{
		Code: errcode.ServiceConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot create REST client for %q: %w", rawURL, err),
	}
}

// NotConnectedError is returned when the store is used before Connect.
func NotConnectedError() error {
	msg := "Service operation attempted without a client"

	return &gn.Error{
		Code: errcode.ServiceNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to service"),
	}
}

// ProbeError is returned when the startup probe fails.
func ProbeError(table string, err error) error {
	msg := `Cannot read from table <em>%s</em>

<em>Possible causes:</em>
  - Wrong service URL or key
  - The table does not exist or is not exposed by the API
  - Network connectivity issues`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.ServiceProbeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("probe of %s failed: %w", table, err),
	}
}

// InsertError is returned when the service rejects a record.
func InsertError(table string, err error) error {
	msg := "Cannot insert into <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.ServiceInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s failed: %w", table, err),
	}
}
