// Package store defines the contract of the external service that keeps
// member records.
package store

import (
	"context"

	"github.com/swimroster/memimport/pkg/config"
	"github.com/swimroster/memimport/pkg/member"
)

// Store is a connection to the hosted backend. Implementations live in
// internal/iorest (PostgREST over HTTP) and internal/iodb (PostgreSQL).
//
// A Store is used by one goroutine at a time. Calls block until the service
// responds; no timeout is added on top of what ctx carries.
type Store interface {
	// Connect creates the client using the service settings of cfg.
	Connect(ctx context.Context, cfg *config.Config) error

	// Probe fetches at most one row of the target table. It is used only
	// to confirm connectivity before the import starts.
	Probe(ctx context.Context) (ProbeResult, error)

	// Insert persists one record. The service response is not inspected
	// beyond success or failure.
	Insert(ctx context.Context, rec member.Record) error

	// Close releases the connection.
	Close() error
}

// ProbeResult is the outcome of a successful Probe.
type ProbeResult struct {
	// Table is the name of the probed table.
	Table string `json:"table"`

	// Rows contains zero or one row, keyed by column name.
	Rows []map[string]any `json:"rows"`
}
