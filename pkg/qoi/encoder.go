package qoi

import (
	"io"

	"github.com/pkg/errors"
)

// Encoder turns pixel buffers into QOI streams. It only carries the two
// header tags; all per-encode state lives inside Encode, so one Encoder
// may serve concurrent calls as long as each call owns its sink.
type Encoder struct {
	channels Channels
	space    ColorSpace
}

func NewEncoder(ch Channels, space ColorSpace) (*Encoder, error) {
	if !ch.valid() {
		return nil, InvalidChannelsError(ch)
	}
	if !space.valid() {
		return nil, InvalidColorSpaceError(space)
	}
	return &Encoder{channels: ch, space: space}, nil
}

// Encode writes the complete stream for pixels to w: header, opcodes, end
// marker. It returns the total number of bytes written. The pixel count
// must match width×height exactly; nothing is written otherwise.
//
// A failing write aborts the encode immediately with the sink's error as
// cause. Bytes already written stay written, buffering is the sink's
// business.
func (e *Encoder) Encode(w io.Writer, pixels []Pixel, width, height uint32) (int, error) {
	imageSize := uint64(width) * uint64(height)
	if uint64(len(pixels)) != imageSize {
		return 0, UnmatchedDataSizeError{
			DataSize:   uint64(len(pixels)),
			HeaderSize: imageSize,
		}
	}

	out := &countingSink{sink: NewSink(w)}

	header := Header{
		Width:      width,
		Height:     height,
		Channels:   e.channels,
		ColorSpace: e.space,
	}.Bytes()
	if err := out.write(header[:]); err != nil {
		return out.n, err
	}

	st := &encodeState{previous: Pixel{A: 255}}

	for i := range pixels {
		if err := e.encodePixel(out, st, pixels[i]); err != nil {
			return out.n, err
		}
		st.previous = pixels[i]
	}

	if st.run > 0 {
		if err := out.emitRun(&st.run); err != nil {
			return out.n, err
		}
	}

	if err := out.write(endMarker[:]); err != nil {
		return out.n, err
	}

	return out.n, nil
}

// encodeState is the per-call working set: the previously emitted pixel,
// the 64-slot direct-mapped cache of seen pixels and the pending run
// length. The cache starts all-zero, which is distinct from the initial
// previous pixel (0,0,0,255).
type encodeState struct {
	previous Pixel
	seen     [64]Pixel
	run      uint8
}

// encodePixel emits the cheapest legal opcode for px against st. The
// guards run in fixed priority order (run, index, rgba, diff, luma, rgb);
// the first match wins, that ordering is part of the format contract.
func (e *Encoder) encodePixel(out *countingSink, st *encodeState, px Pixel) error {
	if px == st.previous {
		st.run++
		if st.run == maxRun {
			return out.emitRun(&st.run)
		}
		return nil
	}

	// The run breaks here but px itself still needs an opcode below.
	if st.run > 0 {
		if err := out.emitRun(&st.run); err != nil {
			return err
		}
	}

	// The slot is refreshed unconditionally, whether px hits the cache
	// or ends up in one of the later opcodes. On a hit the rewrite is a
	// no-op since the stored value already equals px.
	hash := px.Hash()
	hit := st.seen[hash] == px
	st.seen[hash] = px
	if hit {
		return out.writeByte(OpIndex | byte(hash))
	}

	// A changed alpha fits no difference opcode, only the raw fallback.
	if e.channels == ChannelsRGBA && px.A != st.previous.A {
		if err := out.writeByte(OpRgba); err != nil {
			return err
		}
		raw := px.rgba()
		return out.write(raw[:])
	}

	// Channel deltas are wrapping uint8 subtractions; the bias trick in
	// the diff and luma guards relies on the modular wraparound.
	dr := px.R - st.previous.R
	dg := px.G - st.previous.G
	db := px.B - st.previous.B

	if dr+2 <= 3 && dg+2 <= 3 && db+2 <= 3 {
		return out.writeByte(OpDiff | (dr+2)<<4 | (dg+2)<<2 | (db+2))
	}

	drDg := dr - dg
	dbDg := db - dg
	if dg+32 <= 63 && drDg+8 <= 15 && dbDg+8 <= 15 {
		return out.write([]byte{OpLuma | (dg + 32), (drDg+8)<<4 | (dbDg + 8)})
	}

	if err := out.writeByte(OpRgb); err != nil {
		return err
	}
	raw := px.rgb()
	return out.write(raw[:])
}

// Encode is a convenience wrapper around NewEncoder + Encoder.Encode.
func Encode(w io.Writer, pixels []Pixel, width, height uint32, ch Channels, space ColorSpace) (int, error) {
	enc, err := NewEncoder(ch, space)
	if err != nil {
		return 0, err
	}
	return enc.Encode(w, pixels, width, height)
}

// countingSink tracks how many bytes actually reached the sink, including
// partial writes before a failure.
type countingSink struct {
	sink Sink
	n    int
}

func (c *countingSink) write(p []byte) error {
	n, err := c.sink.Write(p)
	c.n += n
	if err != nil {
		return errors.Wrap(err, "qoi: sink write failed")
	}
	return nil
}

func (c *countingSink) writeByte(b byte) error {
	if err := c.sink.WriteByte(b); err != nil {
		return errors.Wrap(err, "qoi: sink write failed")
	}
	c.n++
	return nil
}

// emitRun flushes the pending run as one OpRun byte and resets it.
func (c *countingSink) emitRun(run *uint8) error {
	b := OpRun | (*run - 1)
	*run = 0
	return c.writeByte(b)
}
