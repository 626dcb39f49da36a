package fmpclient

import (
	"context"
	"net/http"
	"testing"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAPIKey = "test-key"

// mockTransport implements Transport for testing
type mockTransport struct {
	getFunc func(ctx context.Context, rawURL string) (*Response, error)
	urls    []string
}

func (m *mockTransport) Get(ctx context.Context, rawURL string) (*Response, error) {
	m.urls = append(m.urls, rawURL)
	if m.getFunc != nil {
		return m.getFunc(ctx, rawURL)
	}
	return &Response{StatusCode: http.StatusOK, Body: []byte("[]")}, nil
}

// Verify mockTransport implements Transport interface at compile time
var _ Transport = (*mockTransport)(nil)

func respondWith(status int, body string) *mockTransport {
	return &mockTransport{
		getFunc: func(ctx context.Context, rawURL string) (*Response, error) {
			return &Response{StatusCode: status, Body: []byte(body)}, nil
		},
	}
}

func newTestClient(t *testing.T, transport Transport, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithTransport(transport), WithLogger(zap.NewNop())}, opts...)
	client, err := NewClient(testAPIKey, opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	client, err := NewClient(testAPIKey)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultBaseHost, client.BaseURL)
	assert.IsType(t, &HTTPTransport{}, client.Transport())
	assert.Nil(t, client.limiter)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}

func TestNewClientRejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(testAPIKey, WithBaseURL("not a url"))
	assert.Error(t, err)
}

func TestNewClientWithCustomTransport(t *testing.T) {
	customTransport := &mockTransport{}

	client, err := NewClient(testAPIKey,
		WithTransport(customTransport),
		WithBaseURL("http://localhost:8080/"),
		WithRateLimit(5),
	)
	require.NoError(t, err)

	assert.Same(t, customTransport, client.Transport())
	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	require.NotNil(t, client.limiter)
	assert.Equal(t, 5, client.limiter.Burst())
}

func TestWithRateLimitDisabled(t *testing.T) {
	client := newTestClient(t, &mockTransport{}, WithRateLimit(3), WithRateLimit(0))
	assert.Nil(t, client.limiter)
}

func TestDefaultHTTPTransportTimeouts(t *testing.T) {
	transport := NewHTTPTransport(nil)
	httpTransport, ok := transport.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, DefaultReadTimeout, httpTransport.ResponseHeaderTimeout)
	assert.Equal(t, DefaultConnectTimeout, httpTransport.TLSHandshakeTimeout)
}
