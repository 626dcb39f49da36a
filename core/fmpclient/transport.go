package fmpclient

import "context"

// Response is the raw outcome of one GET: the status code and the full body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport abstracts the HTTP layer the dispatcher sends requests through.
//
// The default implementation (HTTPTransport) uses net/http with the connect and
// read timeouts of DefaultConnectTimeout and DefaultReadTimeout. Custom
// implementations can record requests, replay fixtures or route through a proxy:
//
//	client, err := fmpclient.NewClient(apiKey,
//	    fmpclient.WithTransport(myTransport),
//	)
//
// Get must not retry; a non-2xx status is a Response, not an error.
type Transport interface {
	// Get fetches rawURL, which already carries the encoded query and credential.
	Get(ctx context.Context, rawURL string) (*Response, error)
}
