package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/swimroster/memimport/pkg/errcode"
)

// UnknownBackendError is returned for a backend name that has no
// store implementation.
func UnknownBackendError(backend string) error {
	msg := "Unknown backend <em>%s</em>, use <em>rest</em> or <em>postgres</em>"
	vars := []any{backend}

	return &gn.Error{
		Code: errcode.UnknownBackendError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown backend %q", backend),
	}
}
