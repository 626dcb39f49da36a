package fmpclient

import (
	"context"
	"net/url"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
)

// MarketHours returns the trading hours of the major exchanges. The API answers
// with a single object, which comes back as a one-record table.
func (c *Client) MarketHours(ctx context.Context, input types.MarketHoursInput) (types.Output, error) {
	return c.fetchAndFormat(ctx, types.APIVersionV3, "market-hours", types.Query{}, input.OutputOptions)
}

func (c *Client) SectorsPerformance(ctx context.Context, input types.SectorsPerformanceInput) (types.Output, error) {
	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	return c.fetchAndFormat(ctx, types.APIVersionV3, "sectors-performance", query, input.OutputOptions)
}

// TechnicalIndicators returns an indicator series such as a 10 period daily SMA.
func (c *Client) TechnicalIndicators(ctx context.Context, input types.TechnicalIndicatorsInput) (types.Output, error) {
	timeDelta, err := util.ValidateTechnicalIndicatorsTimeDelta(orDefault(input.TimeDelta, defaultTimeDelta))
	if err != nil {
		return types.Output{}, err
	}
	statisticsType, err := util.ValidateStatisticsType(orDefault(input.StatisticsType, defaultStatisticsType))
	if err != nil {
		return types.Output{}, err
	}
	input.TimeDelta = timeDelta
	input.StatisticsType = statisticsType
	if input.Period <= 0 {
		input.Period = defaultIndicatorPeriod
	}

	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	path := "technical_indicator/" + timeDelta + "/" + url.PathEscape(input.Symbol)
	return c.fetchAndFormat(ctx, types.APIVersionV3, path, query, input.OutputOptions)
}
