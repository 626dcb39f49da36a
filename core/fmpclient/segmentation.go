package fmpclient

import (
	"context"

	"github.com/dwrod/fmpsdk/core/transcode"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
)

const segmentationDateKey = "date"

// RevenueProductSegmentation returns revenue by product segment.
//
// The API keys each item by date: {"2024-09-28": {"iPhone": 1, "Mac": 2}}. Structured
// output keeps that shape; the tables get one row per date instead:
//
//	date        iPhone  Mac
//	2024-09-28  1       2
func (c *Client) RevenueProductSegmentation(ctx context.Context, input types.RevenueSegmentationInput) (types.Output, error) {
	period, err := util.ValidatePeriod(orDefault(input.Period, defaultSegmentationPeriod))
	if err != nil {
		return types.Output{}, err
	}
	input.Period = period

	query, err := util.StructAsQuery(input)
	if err != nil {
		return types.Output{}, err
	}
	query["structure"] = "flat"

	format, err := util.ParseFormat(string(input.Format))
	if err != nil {
		return types.Output{}, err
	}

	result := c.Fetch(ctx, types.APIVersionV4, "revenue-product-segmentation", query)
	if format != types.FormatJSON && !result.IsNoData() {
		result = types.Ok(flattenByDate(result.Records()))
	}
	return transcode.FormatOutput(result, format, transcode.FromOutputOptions(input.OutputOptions)...)
}

// flattenByDate turns every {date: {k: v}} field into a record {date, k...}.
// A date whose value is not an object becomes {date, value}.
func flattenByDate(records []types.Record) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		for _, f := range rec.Fields() {
			fields := []types.Field{{Key: segmentationDateKey, Value: f.Key}}
			if nested, ok := f.Value.(types.Record); ok {
				fields = append(fields, nested.Fields()...)
			} else {
				fields = append(fields, types.Field{Key: valueKey, Value: f.Value})
			}
			out = append(out, types.NewRecord(fields...))
		}
	}
	return out
}
