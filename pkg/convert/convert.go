// Package convert turns ordinary images into QOI files.
package convert

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"qoiscreen/pkg/qoi"
)

func New(logger *zap.Logger, opts ...Option) *Converter {
	c := &Converter{
		fs:    afero.NewOsFs(),
		log:   logger,
		space: qoi.SRGB,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Converter decodes PNG/JPEG/GIF sources, optionally resizes them and
// encodes the result as QOI.
type Converter struct {
	fs     afero.Fs
	log    *zap.Logger
	space  qoi.ColorSpace
	width  int
	height int
	crop   bool
}

// Result describes one finished conversion.
type Result struct {
	Source  string
	Target  string
	RawSize bytesize.ByteSize
	Size    bytesize.ByteSize
}

// Ratio is the encoded size relative to the source file size.
func (r Result) Ratio() float64 {
	if r.RawSize == 0 {
		return 0
	}
	return float64(r.Size) / float64(r.RawSize)
}

func (r Result) String() string {
	return fmt.Sprintf("%s -> %s (%s -> %s, %.0f%%)",
		r.Source, r.Target, r.RawSize, r.Size, r.Ratio()*100)
}

// Image encodes a decoded image, applying the configured resize first.
func (c *Converter) Image(img image.Image) ([]byte, error) {
	if c.width > 0 && c.height > 0 {
		resize := lo.Ternary(c.crop, c.fill, c.fit)
		img = resize(img)
	}

	var buf bytes.Buffer
	if _, err := qoi.EncodeImage(&buf, img, c.space); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Bytes decodes an image blob and encodes it as QOI.
func (c *Converter) Bytes(bs []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	return c.Image(img)
}

// File converts one file on the configured filesystem. The target path
// is the source with its extension swapped for .qoi.
func (c *Converter) File(src string) (*Result, error) {
	bs, err := afero.ReadFile(c.fs, src)
	if err != nil {
		return nil, fmt.Errorf("read source failed: %w", err)
	}

	out, err := c.Bytes(bs)
	if err != nil {
		return nil, err
	}

	dst := targetName(src)
	if err := afero.WriteFile(c.fs, dst, out, 0644); err != nil {
		return nil, fmt.Errorf("write target failed: %w", err)
	}

	res := &Result{
		Source:  src,
		Target:  dst,
		RawSize: bytesize.New(float64(len(bs))),
		Size:    bytesize.New(float64(len(out))),
	}

	c.log.With(
		zap.String("src", src),
		zap.String("dst", dst),
		zap.String("size", res.Size.String()),
	).Debug("converted")

	return res, nil
}

func (c *Converter) fill(img image.Image) image.Image {
	return imaging.Fill(img, c.width, c.height, imaging.Center, imaging.Lanczos)
}

func (c *Converter) fit(img image.Image) image.Image {
	return imaging.Fit(img, c.width, c.height, imaging.Lanczos)
}

func targetName(src string) string {
	if i := strings.LastIndex(src, "."); i > 0 {
		src = src[:i]
	}
	return src + ".qoi"
}
