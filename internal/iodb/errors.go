package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// ConnectionError is returned when database connection fails.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Could not connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     pg_isready -h %s -p %d

  2. Review connection settings:
     Database: %s
     User: %s`
	vars := []any{host, port, database, user}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError is returned when operations are attempted
// without an active database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ProbeError is returned when the startup probe query fails.
func ProbeError(table string, err error) error {
	msg := `Cannot read from table <em>%s</em>

<em>Possible causes:</em>
  - The table does not exist in the configured schema
  - The database user has no SELECT permission`
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBProbeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("probe of %s failed: %w", table, err),
	}
}

// InsertError is returned when the database rejects a record.
func InsertError(table string, err error) error {
	msg := "Cannot insert into <em>%s</em>"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBInsertError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("insert into %s failed: %w", table, err),
	}
}
