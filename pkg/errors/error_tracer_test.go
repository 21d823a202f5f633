package errors

import (
	stderrors "errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewCode(TradePersistError).Wrap(cause)

	assert.Equal(t, TradePersistError, err.Code)
	assert.Equal(t, string(TradePersistError), err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrap_CapturesStackOnce(t *testing.T) {
	t.Run("plain error gets a stack", func(t *testing.T) {
		err := NewTracer("boom").Wrap(stderrors.New("plain"))
		assert.NotNil(t, err.StackTrace())
	})

	t.Run("already-traced error is kept as is", func(t *testing.T) {
		traced := pkgerrors.New("traced")
		err := NewTracer("boom").Wrap(traced)

		assert.Same(t, traced, err.Err)
		assert.NotNil(t, err.StackTrace())
	})
}

func TestTracerFromError(t *testing.T) {
	cause := stderrors.New("redis: network timeout")
	err := TracerFromError(cause)

	require.NotNil(t, err)
	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotNil(t, err.StackTrace())
}

func TestStackTrace_NilWithoutCause(t *testing.T) {
	assert.Nil(t, NewCode(BookInvariantError).StackTrace())
}
