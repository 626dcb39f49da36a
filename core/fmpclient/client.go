package fmpclient

import (
	"net/http"
	"strings"

	"github.com/dwrod/fmpsdk/core/logging"
	clientType "github.com/dwrod/fmpsdk/core/types"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the FMP REST API. It is read-only after construction and safe
// for concurrent use.
type Client struct {
	BaseURL   string `validate:"required,url"`
	apiKey    string
	transport Transport
	logger    *zap.Logger
	limiter   *rate.Limiter
}

var _ clientType.Client = (*Client)(nil)

type Option func(*Client)

// NewClient creates a client that authenticates every request with apiKey.
func NewClient(apiKey string, options ...Option) (*Client, error) {
	c := &Client{
		BaseURL: clientType.DefaultBaseHost,
		apiKey:  apiKey,
		logger:  logging.L(),
	}
	for _, option := range options {
		option(c)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.transport == nil {
		c.transport = NewHTTPTransport(nil)
	}

	// Validate the client
	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	return c, nil
}

func (c *Client) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.apiKey, "required"); err != nil {
		return errors.Wrap(err, "api key")
	}
	return validate.Struct(c)
}

// WithBaseURL overrides the scheme and host, e.g. for a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient sends requests through httpClient instead of the default one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.transport = NewHTTPTransport(httpClient)
	}
}

// WithTransport replaces the HTTP layer entirely.
func WithTransport(transport Transport) Option {
	return func(c *Client) {
		c.transport = transport
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithRateLimit makes every request wait for a token; requestsPerSecond <= 0 disables limiting.
func WithRateLimit(requestsPerSecond int) Option {
	return func(c *Client) {
		if requestsPerSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// Transport returns the transport requests go through.
func (c *Client) Transport() Transport {
	return c.transport
}
