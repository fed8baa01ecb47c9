package qoi

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSinkPassesThrough(t *testing.T) {
	var buf bytes.Buffer

	require.Equal(t, Sink(&buf), NewSink(&buf))
}

type sliceOnlyWriter struct {
	bs []byte
}

func (w *sliceOnlyWriter) Write(p []byte) (int, error) {
	w.bs = append(w.bs, p...)
	return len(p), nil
}

func TestNewSinkAdaptsPlainWriter(t *testing.T) {
	w := &sliceOnlyWriter{}
	s := NewSink(w)

	require.NoError(t, s.WriteByte(0xfe))
	n, err := s.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.Equal(t, []byte{0xfe, 1, 2, 3}, w.bs)
}

var _ io.Writer = Sink(nil)
