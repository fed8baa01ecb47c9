package convert

import (
	"github.com/spf13/afero"

	"qoiscreen/pkg/qoi"
)

type Option func(c *Converter)

// WithFs swaps the filesystem File works against, mainly for tests.
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}

// WithSize scales sources into w×h before encoding, keeping the aspect
// ratio. With crop the image fills the box and overflow is cut away,
// otherwise it fits inside.
func WithSize(w, h int, crop bool) Option {
	return func(c *Converter) {
		c.width = w
		c.height = h
		c.crop = crop
	}
}

// WithLinear tags the output as all-channels-linear instead of sRGB.
func WithLinear() Option {
	return func(c *Converter) {
		c.space = qoi.Linear
	}
}
