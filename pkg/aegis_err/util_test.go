// pkg/aegis_err/util_test.go

package aegis_err

import (
	"testing"

	cerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpectedError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, NewExpectedError(nil))
	})

	t.Run("wraps and preserves message", func(t *testing.T) {
		base := cerr.New("length out of range")
		err := NewExpectedError(base)
		require.Error(t, err)
		assert.Equal(t, "length out of range", err.Error())
		assert.ErrorIs(t, err, base)
	})
}

func TestIsExpectedUserError(t *testing.T) {
	base := cerr.New("bad input")

	assert.False(t, IsExpectedUserError(nil))
	assert.False(t, IsExpectedUserError(base))
	assert.True(t, IsExpectedUserError(NewExpectedError(base)))

	// Classification survives further wrapping.
	wrapped := cerr.Wrap(NewExpectedError(base), "while generating")
	assert.True(t, IsExpectedUserError(wrapped))
}
