package qoi

import (
	"image"
	"image/color"
	"io"
)

// FromImage flattens img into a pixel buffer in row-major order, plus the
// dimensions to encode it with. Colors pass through color.NRGBAModel, so
// premultiplied sources come out straight-alpha.
func FromImage(img image.Image) ([]Pixel, uint32, uint32) {
	b := img.Bounds()
	pixels := make([]Pixel, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, RGBA(c.R, c.G, c.B, c.A))
		}
	}

	return pixels, uint32(b.Dx()), uint32(b.Dy())
}

// EncodeImage encodes any image.Image to w. The channel tag is RGB unless
// the image contains at least one non-opaque pixel.
func EncodeImage(w io.Writer, img image.Image, space ColorSpace) (int, error) {
	pixels, width, height := FromImage(img)

	ch := ChannelsRGB
	for _, p := range pixels {
		if p.A != 255 {
			ch = ChannelsRGBA
			break
		}
	}

	return Encode(w, pixels, width, height, ch, space)
}
