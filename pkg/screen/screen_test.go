package screen

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qoiscreen/pkg/qoi"
)

// loopback records writes and acks every read.
type loopback struct {
	out bytes.Buffer
}

func (l *loopback) Write(p []byte) (int, error) {
	return l.out.Write(p)
}

func (l *loopback) Read(p []byte) (int, error) {
	p[0] = 0x06
	return 1, nil
}

func TestDrawFramesQOIStream(t *testing.T) {
	lb := &loopback{}
	s := New(lb, zap.NewNop(), 2, 2)

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	require.NoError(t, s.Draw(img))

	msg := lb.out.Bytes()
	require.EqualValues(t, DrawFrame, msg[0])

	payloadLen := binary.BigEndian.Uint32(msg[2:6])
	payload := msg[6:]
	require.Len(t, payload, int(payloadLen))

	h, err := qoi.ParseHeader(payload[:qoi.HeaderSize])
	require.NoError(t, err)
	require.Equal(t, qoi.Header{Width: 2, Height: 2, Channels: qoi.ChannelsRGB, ColorSpace: qoi.SRGB}, h)
}

func TestDrawRejectsWrongSize(t *testing.T) {
	s := New(&loopback{}, zap.NewNop(), 320, 480)

	err := s.Draw(image.NewNRGBA(image.Rect(0, 0, 10, 10)))

	require.EqualError(t, err, "frame 10x10 does not fit 320x480 panel")
}

func TestCommands(t *testing.T) {
	lb := &loopback{}
	s := New(lb, zap.NewNop(), 320, 480)

	require.NoError(t, s.Wake())
	require.NoError(t, s.SetBacklight(80))

	msgs := lb.out.Bytes()
	require.EqualValues(t, Wake, msgs[0])
	require.EqualValues(t, Backlight, msgs[6])
	require.EqualValues(t, 80, msgs[7])
}
