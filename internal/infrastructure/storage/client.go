// Package storage fetches uploaded payment proofs and contract documents
// from the platform's object-storage HTTP surface by storage path.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type Client struct {
	base string
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: resty.New(),
	}
}

// Download returns the object bytes and its content type.
func (c *Client) Download(ctx context.Context, path string) ([]byte, string, error) {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return nil, "", fmt.Errorf("VALIDATION: storage path is required")
	}
	resp, err := c.http.R().SetContext(ctx).Get(c.base + "/" + path)
	if err != nil {
		return nil, "", err
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), resp.Header().Get("Content-Type"), nil
	case http.StatusNotFound:
		return nil, "", fmt.Errorf("NOT_FOUND: storage object %s", path)
	default:
		return nil, "", fmt.Errorf("storage request status: %d", resp.StatusCode())
	}
}
