package fmpclient

import (
	"context"
	"net/url"
	"strings"

	"github.com/dwrod/fmpsdk/core/transcode"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
	"github.com/pkg/errors"
)

const (
	defaultPeriod             = "annual"
	defaultSegmentationPeriod = "quarter"
	defaultTimeDelta          = "daily"
	defaultStatisticsType     = "sma"
	defaultIndicatorPeriod    = 10
)

// fetchAndFormat validates the output options, then dispatches and transcodes.
// Validation errors are returned before any request is made.
func (c *Client) fetchAndFormat(ctx context.Context, version types.APIVersion, path string, query types.Query, oo types.OutputOptions) (types.Output, error) {
	format, err := util.ParseFormat(string(oo.Format))
	if err != nil {
		return types.Output{}, err
	}
	return transcode.FormatOutput(c.Fetch(ctx, version, path, query), format, transcode.FromOutputOptions(oo)...)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// Quote returns real-time quotes for one or more symbols in a single request.
func (c *Client) Quote(ctx context.Context, input types.QuoteInput) (types.Output, error) {
	if _, err := util.StructAsQuery(input); err != nil {
		return types.Output{}, err
	}

	symbols := make([]string, 0, len(input.Symbols))
	for _, s := range input.Symbols {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, url.PathEscape(s))
		}
	}
	if len(symbols) == 0 {
		return types.Output{}, errors.New("at least one symbol is required")
	}

	return c.fetchAndFormat(ctx, types.APIVersionV3, "quote/"+strings.Join(symbols, ","), types.Query{}, input.OutputOptions)
}

func (c *Client) CompanyProfile(ctx context.Context, input types.CompanyProfileInput) (types.Output, error) {
	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV3, "profile/"+url.PathEscape(input.Symbol), query, input.OutputOptions)
}

func (c *Client) IncomeStatement(ctx context.Context, input types.FinancialStatementInput) (types.Output, error) {
	return c.financialStatement(ctx, "income-statement/", input)
}

func (c *Client) AnalystEstimates(ctx context.Context, input types.AnalystEstimatesInput) (types.Output, error) {
	return c.financialStatement(ctx, "analyst-estimates/", input)
}

func (c *Client) financialStatement(ctx context.Context, prefix string, input types.FinancialStatementInput) (types.Output, error) {
	period, err := util.ValidatePeriod(orDefault(input.Period, defaultPeriod))
	if err != nil {
		return types.Output{}, err
	}
	input.Period = period

	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV3, prefix+url.PathEscape(input.Symbol), query, input.OutputOptions)
}

// StockPeers returns companies on the same exchange and sector with a similar market cap.
func (c *Client) StockPeers(ctx context.Context, input types.StockPeersInput) (types.Output, error) {
	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV4, "stock_peers", query, input.OutputOptions)
}
