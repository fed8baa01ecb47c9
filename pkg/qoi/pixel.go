package qoi

import (
	"github.com/pkg/errors"
)

// Pixel is one color value. Pixels built via RGB carry a materialized
// alpha of 255, so equality and hashing behave the same for both layouts.
type Pixel struct {
	R, G, B, A uint8
}

// RGB builds an opaque pixel. The implicit alpha of a 3-channel pixel is
// 255, never zero.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: 255}
}

// RGBA builds a pixel with an explicit alpha channel.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel{R: r, G: g, B: b, A: a}
}

// Hash maps the pixel into the 64-slot index cache. The multipliers and
// the alpha term (255 for opaque pixels) are mandated by the format; any
// deviation breaks interoperability with independent decoders.
func (p Pixel) Hash() int {
	return (int(p.R)*3 + int(p.G)*5 + int(p.B)*7 + int(p.A)*11) % 64
}

func (p Pixel) rgb() [3]byte {
	return [3]byte{p.R, p.G, p.B}
}

func (p Pixel) rgba() [4]byte {
	return [4]byte{p.R, p.G, p.B, p.A}
}

// ParsePixels converts a raw interleaved channel buffer into pixels.
// For RGB input the alpha of every pixel is set to 255.
func ParsePixels(data []byte, ch Channels) ([]Pixel, error) {
	if !ch.valid() {
		return nil, InvalidChannelsError(ch)
	}

	n := int(ch)
	if len(data)%n != 0 {
		return nil, errors.Errorf("pixel data size %d is not a multiple of %d channels", len(data), n)
	}

	pixels := make([]Pixel, 0, len(data)/n)
	for i := 0; i < len(data); i += n {
		if ch == ChannelsRGB {
			pixels = append(pixels, RGB(data[i], data[i+1], data[i+2]))
		} else {
			pixels = append(pixels, RGBA(data[i], data[i+1], data[i+2], data[i+3]))
		}
	}

	return pixels, nil
}
