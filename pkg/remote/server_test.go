package remote

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"qoiscreen/pkg/convert"
	"qoiscreen/pkg/qoi"
)

func TestHandlerEncodes(t *testing.T) {
	h := NewHandler(convert.New(zap.NewNop()), zap.NewNop())

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(1, 1, color.NRGBA{R: 200, A: 255})
	var body bytes.Buffer
	require.NoError(t, png.Encode(&body, img))

	req := httptest.NewRequest("POST", "/encode", &body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	require.Equal(t, ContentType, rec.Header().Get("Content-Type"))

	hdr, err := qoi.ParseHeader(rec.Body.Bytes()[:qoi.HeaderSize])
	require.NoError(t, err)
	require.EqualValues(t, 3, hdr.Width)
	require.EqualValues(t, 3, hdr.Height)
}

func TestHandlerRejectsGet(t *testing.T) {
	h := NewHandler(convert.New(zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/encode", nil))

	require.Equal(t, 405, rec.Code)
}

func TestHandlerRejectsGarbage(t *testing.T) {
	h := NewHandler(convert.New(zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/encode", strings.NewReader("junk")))

	require.Equal(t, 422, rec.Code)
}
