// Package qoi implements the encoder side of the "Quite OK Image" format:
// a 14-byte header, a stream of variable-length opcodes and a fixed end
// marker. See https://qoiformat.org/qoi-specification.pdf
package qoi

// Magic is the four byte signature every QOI stream starts with.
const Magic = "qoif"

// HeaderSize is the fixed serialized size of a Header.
const HeaderSize = 14

// Opcodes of the format. The 2-bit ops carry their payload in the low six
// bits of the tag byte; OpRgb and OpRgba are full byte literals.
const (
	OpIndex = byte(0b00000000)
	OpDiff  = byte(0b01000000)
	OpLuma  = byte(0b10000000)
	OpRun   = byte(0b11000000)
	OpRgb   = byte(0b11111110)
	OpRgba  = byte(0b11111111)
)

// maxRun is the longest run one OpRun byte can carry.
const maxRun = 62

// endMarker closes every stream. Seven zero bytes and a one, chosen so it
// can never be mistaken for a valid opcode prefix.
var endMarker = [8]byte{0, 0, 0, 0, 0, 0, 0, 1}

// Channels tags the pixel layout carried in the header.
type Channels uint8

const (
	ChannelsRGB  Channels = 3
	ChannelsRGBA Channels = 4
)

func (c Channels) valid() bool {
	return c == ChannelsRGB || c == ChannelsRGBA
}

// ColorSpace tags how channel values should be interpreted. It is purely
// informative, the encoding itself never looks at it.
type ColorSpace uint8

const (
	SRGB   ColorSpace = 0 // sRGB with linear alpha
	Linear ColorSpace = 1 // all channels linear
)

func (s ColorSpace) valid() bool {
	return s == SRGB || s == Linear
}
