package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers use the resty request builder
// directly.
//
// Example usage:
//
//	client, _ := utils.NewHTTPClient("localhost:8080", 10*time.Second)
//	resp, err := client.R().SetBody(req).Post("/api/storage/get_item")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to address. A missing scheme
// defaults to http. A zero timeout leaves resty's default in place.
func NewHTTPClient(address string, timeout time.Duration) (*HTTPClient, error) {
	baseURL, err := NormalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid http address: %w", err)
	}

	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL turns "host:port" or a full URL into a base URL without a
// trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
