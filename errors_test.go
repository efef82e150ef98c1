package bjpeg

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeErrorIsMatchesByKind(t *testing.T) {
	err := newErr(KindMalformedStream, 42, "bad segment")

	require.True(t, errors.Is(err, ErrMalformedStream))
	require.False(t, errors.Is(err, ErrUnsupportedFeature))
}

func TestDecodeErrorMessageIncludesOffset(t *testing.T) {
	err := newErr(KindIO, 7, "boom")
	require.Contains(t, err.Error(), "offset 7")
	require.Contains(t, err.Error(), "boom")
}

func TestAsDecodeError(t *testing.T) {
	var wrapped error = newErr(KindTableMissing, -1, "missing")

	de, ok := AsDecodeError(wrapped)
	require.True(t, ok)
	require.Equal(t, KindTableMissing, de.Kind)

	_, ok = AsDecodeError(errors.New("not a decode error"))
	require.False(t, ok)
}
