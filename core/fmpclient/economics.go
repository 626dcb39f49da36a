package fmpclient

import (
	"context"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
	"github.com/golang-sql/civil"
	"github.com/pkg/errors"
)

func validateDateRange(from, to *civil.Date) error {
	if from != nil && to != nil && to.Before(*from) {
		return errors.Errorf("invalid date range: %s is after %s", from, to)
	}
	return nil
}

// TreasuryRates returns daily treasury rates for every maturity, optionally bounded by date.
func (c *Client) TreasuryRates(ctx context.Context, input types.TreasuryRatesInput) (types.Output, error) {
	if err := validateDateRange(input.From, input.To); err != nil {
		return types.Output{}, err
	}
	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV4, "treasury", query, input.OutputOptions)
}

// EconomicIndicators returns one series, e.g. "GDP", "CPI" or "unemploymentRate".
func (c *Client) EconomicIndicators(ctx context.Context, input types.EconomicIndicatorsInput) (types.Output, error) {
	if err := validateDateRange(input.From, input.To); err != nil {
		return types.Output{}, err
	}
	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV4, "economic", query, input.OutputOptions)
}
