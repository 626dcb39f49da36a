package fmpclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	redactedAPIKey  = "REDACTED"
	errorMessageKey = "Error Message"

	// valueKey names the field a bare array element is wrapped under.
	valueKey = "value"
)

// NoData reasons recorded in CallMetadata.Reason.
const (
	ReasonRateLimiter = "rate_limiter"
	ReasonTransport   = "transport"
	ReasonStatus      = "status"
	ReasonEmptyBody   = "empty_body"
	ReasonMalformed   = "malformed"
	ReasonAPIError    = "api_error"
	ReasonShape       = "unexpected_shape"
)

// Fetch performs one GET against the versioned API and normalizes the body into
// records. Every failure collapses to NoData after being logged.
func (c *Client) Fetch(ctx context.Context, version types.APIVersion, path string, query types.Query) types.Result {
	result, _ := c.FetchWithMetadata(ctx, version, path, query)
	return result
}

// FetchWithMetadata is Fetch that also reports why a call produced NoData.
func (c *Client) FetchWithMetadata(ctx context.Context, version types.APIVersion, path string, query types.Query) (types.Result, types.CallMetadata) {
	start := time.Now()
	meta := types.CallMetadata{
		RequestID: uuid.NewString(),
		Version:   version,
		Path:      path,
	}
	endpoint := c.endpointURL(version, path)
	logger := c.logger.With(
		zap.String("request_id", meta.RequestID),
		zap.String("url", endpoint+"?"+query.Encode(redactedAPIKey)),
	)

	noData := func(reason string) (types.Result, types.CallMetadata) {
		meta.NoData = true
		meta.Reason = reason
		meta.Duration = time.Since(start)
		return types.NoData(), meta
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.Error("rate limiter wait failed", zap.Error(err))
			return noData(ReasonRateLimiter)
		}
	}

	resp, err := c.transport.Get(ctx, endpoint+"?"+query.Encode(c.apiKey))
	if err != nil {
		logger.Error("request failed", zap.String("error", c.redact(err.Error())))
		return noData(ReasonTransport)
	}
	meta.StatusCode = resp.StatusCode

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logStatus(logger, resp.StatusCode)
		return noData(ReasonStatus)
	}

	records, reason, err := decodeBody(resp.Body)
	if err != nil {
		logger.Error("unusable response body",
			zap.Int("status", resp.StatusCode),
			zap.String("reason", reason),
			zap.Error(err))
		return noData(reason)
	}

	meta.RowsServed = len(records)
	meta.Duration = time.Since(start)
	logger.Debug("request succeeded",
		zap.Int("status", resp.StatusCode),
		zap.Int("rows", len(records)),
		zap.Duration("duration", meta.Duration))
	return types.Ok(records), meta
}

// endpointURL joins the base host, the version segment and path without the query.
func (c *Client) endpointURL(version types.APIVersion, path string) string {
	return c.BaseURL + version.Path() + strings.TrimLeft(path, "/")
}

func (c *Client) redact(s string) string {
	if c.apiKey == "" {
		return s
	}
	return strings.ReplaceAll(s, c.apiKey, redactedAPIKey)
}

func logStatus(logger *zap.Logger, status int) {
	field := zap.Int("status", status)
	switch {
	case status == http.StatusUnauthorized:
		logger.Error("API authentication failed. Check your FMP API key.", field)
	case status == http.StatusForbidden:
		logger.Error("API access forbidden. Your plan may not include this endpoint.", field)
	case status == http.StatusNotFound:
		logger.Warn("Resource not found. Symbol or endpoint may not exist.", field)
	case status == http.StatusTooManyRequests:
		logger.Error("Rate limit exceeded. Too many requests.", field)
	case status >= http.StatusInternalServerError:
		logger.Error("FMP server error. Try again later.", field)
	default:
		logger.Error("Unexpected HTTP status.", field)
	}
}

// decodeBody turns a 2xx body into records. On failure it returns the NoData reason.
//
//	[{...}, {...}]        records in order
//	{...}                 one record
//	{} or []              no records
//	[1, "a"]              each element wrapped as {"value": v}
//	{"Error Message": m}  failure
func decodeBody(body []byte) ([]types.Record, string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, ReasonEmptyBody, errors.New("empty response body")
	}

	decoded, err := types.DecodeJSON(body)
	if err != nil {
		return nil, ReasonMalformed, err
	}

	switch t := decoded.(type) {
	case types.Record:
		if msg, ok := t.Get(errorMessageKey); ok {
			return nil, ReasonAPIError, errors.Errorf("FMP API error: %s", fmt.Sprint(msg))
		}
		if t.Len() == 0 {
			return []types.Record{}, "", nil
		}
		return []types.Record{t}, "", nil
	case []any:
		records := make([]types.Record, 0, len(t))
		for _, item := range t {
			if rec, ok := item.(types.Record); ok {
				records = append(records, rec)
				continue
			}
			records = append(records, types.NewRecord(types.Field{Key: valueKey, Value: item}))
		}
		return records, "", nil
	default:
		return nil, ReasonShape, errors.Errorf("expected JSON array or object, got %T", decoded)
	}
}
