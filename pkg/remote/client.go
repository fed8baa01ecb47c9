package remote

import (
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

func NewClient(base string) *Client {
	return &Client{
		cli: resty.New().SetBaseURL(base),
	}
}

// Client talks to a Proxy instance.
type Client struct {
	cli *resty.Client
}

// Encode sends an image blob to the service and returns the QOI stream.
func (c *Client) Encode(src []byte) ([]byte, error) {
	resp, err := c.cli.R().SetBody(src).Post("/encode")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, errors.Errorf("remote encode failed: %s: %s", resp.Status(), resp.Body())
	}

	return resp.Body(), nil
}
