package transport

import "net/http"

// Requester is the single HTTP primitive the SDK depends on. Any HTTP client
// satisfies it; *http.Client does via a thin wrapper.
type Requester interface {
	Do(req *http.Request) (*http.Response, error)
}
