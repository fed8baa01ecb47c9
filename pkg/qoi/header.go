package qoi

import "encoding/binary"

// Header is the fixed 14-byte record at the start of every stream.
type Header struct {
	Width      uint32
	Height     uint32
	Channels   Channels
	ColorSpace ColorSpace
}

// Bytes serializes the header: magic, big-endian width and height, then
// the raw channel and color-space tags.
func (h Header) Bytes() [HeaderSize]byte {
	var bs [HeaderSize]byte

	copy(bs[0:4], Magic)
	binary.BigEndian.PutUint32(bs[4:8], h.Width)
	binary.BigEndian.PutUint32(bs[8:12], h.Height)
	bs[12] = byte(h.Channels)
	bs[13] = byte(h.ColorSpace)

	return bs
}

// ParseHeader validates and decodes a serialized header. Checks run in a
// fixed order (size, magic, channels, color space) and the first failing
// one wins; the returned error carries the offending value.
func ParseHeader(bs []byte) (Header, error) {
	if len(bs) != HeaderSize {
		return Header{}, InvalidHeaderSizeError(len(bs))
	}

	if string(bs[0:4]) != Magic {
		return Header{}, InvalidMagicError{bs[0], bs[1], bs[2], bs[3]}
	}

	ch := Channels(bs[12])
	if !ch.valid() {
		return Header{}, InvalidChannelsError(bs[12])
	}

	space := ColorSpace(bs[13])
	if !space.valid() {
		return Header{}, InvalidColorSpaceError(bs[13])
	}

	return Header{
		Width:      binary.BigEndian.Uint32(bs[4:8]),
		Height:     binary.BigEndian.Uint32(bs[8:12]),
		Channels:   ch,
		ColorSpace: space,
	}, nil
}
