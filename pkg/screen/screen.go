// Package screen pushes encoded frames to a small USB display that
// accepts QOI streams behind a one-byte command preamble.
package screen

import (
	"bytes"
	"image"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"qoiscreen/pkg/qoi"
)

// Command codes understood by the display firmware.
const (
	Sleep     = 108
	Wake      = 109
	Backlight = 110
	DrawFrame = 197
)

func New(rw io.ReadWriter, logger *zap.Logger, width, height int) *Screen {
	return &Screen{
		rw:     rw,
		logger: logger,
		width:  width,
		height: height,
		space:  qoi.SRGB,
	}
}

// Screen drives one display over any byte transport, usually a
// *proto.Serial. Not safe for concurrent draws.
type Screen struct {
	rw     io.ReadWriter
	logger *zap.Logger
	width  int
	height int
	space  qoi.ColorSpace
}

func (s *Screen) Wake() error {
	return s.send(Wake, 0, nil)
}

func (s *Screen) Sleep() error {
	return s.send(Sleep, 0, nil)
}

func (s *Screen) SetBacklight(level uint8) error {
	return s.send(Backlight, level, nil)
}

// Draw encodes img and sends it as one frame. The image must fit the
// panel exactly; the firmware has no partial-update path for QOI frames.
func (s *Screen) Draw(img image.Image) error {
	size := img.Bounds().Size()
	if size.X != s.width || size.Y != s.height {
		return errors.Errorf("frame %dx%d does not fit %dx%d panel", size.X, size.Y, s.width, s.height)
	}

	var buf bytes.Buffer
	n, err := qoi.EncodeImage(&buf, img, s.space)
	if err != nil {
		return errors.Wrap(err, "encode frame")
	}

	s.logger.With(
		zap.Int("raw", size.X*size.Y*4),
		zap.Int("encoded", n),
	).Debug("frame encoded")

	return s.send(DrawFrame, 0, buf.Bytes())
}
