package qoi

import "fmt"

// InvalidHeaderSizeError reports a header blob whose length is not
// exactly HeaderSize bytes.
type InvalidHeaderSizeError int

func (e InvalidHeaderSizeError) Error() string {
	return fmt.Sprintf("qoi: invalid header size %d, want %d", int(e), HeaderSize)
}

// InvalidMagicError reports the four bytes found where Magic was expected.
type InvalidMagicError [4]byte

func (e InvalidMagicError) Error() string {
	return fmt.Sprintf("qoi: invalid magic %q", e[:])
}

// InvalidChannelsError reports a channel tag outside {3, 4}.
type InvalidChannelsError uint8

func (e InvalidChannelsError) Error() string {
	return fmt.Sprintf("qoi: invalid channel number %d", uint8(e))
}

// InvalidColorSpaceError reports a color-space tag outside {0, 1}.
type InvalidColorSpaceError uint8

func (e InvalidColorSpaceError) Error() string {
	return fmt.Sprintf("qoi: invalid color space %d", uint8(e))
}

// UnmatchedDataSizeError reports a pixel buffer whose length differs from
// the width×height the header declares.
type UnmatchedDataSizeError struct {
	DataSize   uint64
	HeaderSize uint64
}

func (e UnmatchedDataSizeError) Error() string {
	return fmt.Sprintf("qoi: pixel data size %d does not match header size %d", e.DataSize, e.HeaderSize)
}
