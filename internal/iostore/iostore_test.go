package iostore_test

import (
	"fmt"
	"testing"

	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swimroster/memimport/internal/iostore"
	"github.com/swimroster/memimport/pkg/errcode"
)

func TestNew(t *testing.T) {
	tests := []struct {
		backend string
		typ     string
	}{
		{"rest", "*iorest.restStore"},
		{"", "*iorest.restStore"},
		{"postgres", "*iodb.pgStore"},
	}

	for _, v := range tests {
		st, err := iostore.New(v.backend)
		require.NoError(t, err)
		assert.Equal(t, v.typ, fmt.Sprintf("%T", st), v.backend)
	}
}

func TestNew_Unknown(t *testing.T) {
	st, err := iostore.New("mysql")
	assert.Nil(t, st)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.UnknownBackendError, gnErr.Code)
	assert.Equal(t, "mysql", gnErr.Vars[0])
}
