package transport

import (
	"net/http"
	"time"
)

// Client wraps net/http behind the Requester interface so the rest of the
// SDK never touches a concrete HTTP client.
type Client struct {
	httpClient *http.Client
}

func New(cfg Config) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if cfg.Timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}
