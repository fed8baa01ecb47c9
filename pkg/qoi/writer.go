package qoi

import "io"

// Sink is the minimal writer the encoder needs: slice writes plus single
// byte writes. *bytes.Buffer and *bufio.Writer satisfy it as-is; wrap
// anything else (sockets, files, serial ports) with NewSink.
type Sink interface {
	io.Writer
	io.ByteWriter
}

// NewSink adapts a plain io.Writer into a Sink, deriving the byte write
// from a one-element slice write. If w already is a Sink it is returned
// unchanged.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &sink{w: w}
}

type sink struct {
	w io.Writer
}

func (s *sink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *sink) WriteByte(b byte) error {
	_, err := s.w.Write([]byte{b})
	return err
}
