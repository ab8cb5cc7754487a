// Package iostore picks the store.Store implementation for a backend
// name.
package iostore

import (
	"github.com/swimroster/memimport/internal/iodb"
	"github.com/swimroster/memimport/internal/iorest"
	"github.com/swimroster/memimport/pkg/store"
)

const (
	// BackendREST talks to the hosted service over its REST API.
	BackendREST = "rest"

	// BackendPostgres connects to the service's PostgreSQL directly.
	BackendPostgres = "postgres"
)

// New returns an unconnected store for backend.
func New(backend string) (store.Store, error) {
	switch backend {
	case BackendREST, "":
		return iorest.New(), nil
	case BackendPostgres:
		return iodb.New(), nil
	default:
		return nil, UnknownBackendError(backend)
	}
}
