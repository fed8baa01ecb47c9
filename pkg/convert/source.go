package convert

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
)

func NewDownloader(logger *zap.Logger) *Downloader {
	return &Downloader{
		cli: resty.New().SetDoNotParseResponse(true),
		log: logger,
	}
}

// Downloader fetches image sources over HTTP so URLs can be converted
// like local files.
type Downloader struct {
	cli *resty.Client
	log *zap.Logger
}

func (d *Downloader) Get(url string) ([]byte, error) {
	resp, err := d.cli.R().Get(url)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("download %s failed: %s", url, resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	d.log.With(zap.String("url", url), zap.Int("size", buf.Len())).Debug("downloaded")
	return buf.Bytes(), nil
}
