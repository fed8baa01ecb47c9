package qoi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderBytes(t *testing.T) {
	h := Header{Width: 1024, Height: 512, Channels: ChannelsRGB, ColorSpace: Linear}

	require.Equal(t,
		[HeaderSize]byte{0x71, 0x6f, 0x69, 0x66, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x02, 0x00, 0x03, 0x01},
		h.Bytes(),
	)
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader([]byte{0x71, 0x6f, 0x69, 0x66, 0, 0, 0x04, 0x01, 0, 0, 0x02, 0, 4, 1})

	require.NoError(t, err)
	require.Equal(t, Header{Width: 1025, Height: 512, Channels: ChannelsRGBA, ColorSpace: Linear}, h)
}

func TestParseHeaderInvalidSize(t *testing.T) {
	_, err := ParseHeader([]byte{0x71, 0x6f, 0x69, 0x66, 0, 0, 0x04, 0x01, 0})

	require.Equal(t, InvalidHeaderSizeError(9), err)
}

func TestParseHeaderInvalidMagic(t *testing.T) {
	_, err := ParseHeader([]byte{0x70, 0x6f, 0x69, 0x66, 0, 0, 0x04, 0x01, 0, 0, 0x02, 0, 9, 1})

	require.Equal(t, InvalidMagicError{0x70, 0x6f, 0x69, 0x66}, err)
}

func TestParseHeaderInvalidChannels(t *testing.T) {
	_, err := ParseHeader([]byte{0x71, 0x6f, 0x69, 0x66, 0, 0, 0x04, 0x01, 0, 0, 0x02, 0, 9, 1})

	require.Equal(t, InvalidChannelsError(9), err)
}

func TestParseHeaderInvalidColorSpace(t *testing.T) {
	_, err := ParseHeader([]byte{0x71, 0x6f, 0x69, 0x66, 0, 0, 0x04, 0x01, 0, 0, 0x02, 0, 3, 4})

	require.Equal(t, InvalidColorSpaceError(4), err)
}

// The magic check outranks the tag checks: a corrupted magic with bad
// tags still reports the magic error.
func TestParseHeaderValidationOrder(t *testing.T) {
	_, err := ParseHeader([]byte{0, 0, 0, 0, 0, 0, 0x04, 0x01, 0, 0, 0x02, 0, 9, 9})

	require.IsType(t, InvalidMagicError{}, err)
}

func TestHeaderRoundTrip(t *testing.T) {
	for _, ch := range []Channels{ChannelsRGB, ChannelsRGBA} {
		for _, space := range []ColorSpace{SRGB, Linear} {
			h := Header{Width: 320, Height: 480, Channels: ch, ColorSpace: space}

			bs := h.Bytes()
			parsed, err := ParseHeader(bs[:])

			require.NoError(t, err)
			require.Equal(t, h, parsed)
		}
	}
}
