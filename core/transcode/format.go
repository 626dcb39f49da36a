package transcode

import (
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
)

type options struct {
	precision *uint
	columns   []string
}

// Option configures FormatOutput.
type Option func(*options)

// WithPrecision rounds floating fields to at most k decimal places before transcoding.
// Rounded values stay floats, so at k = 0 a value such as 2.7 becomes 3.0 in json
// and table output.
func WithPrecision(k uint) Option {
	return func(o *options) {
		o.precision = &k
	}
}

// WithColumns fixes the columns, and their order, of the tabular formats.
// It also names the header when there are no records to take it from.
func WithColumns(columns ...string) Option {
	return func(o *options) {
		o.columns = append([]string(nil), columns...)
	}
}

// FromOutputOptions translates endpoint output options into FormatOutput options.
func FromOutputOptions(oo types.OutputOptions) []Option {
	var opts []Option
	if oo.Precision != nil {
		opts = append(opts, WithPrecision(*oo.Precision))
	}
	return opts
}

// FormatOutput converts a dispatcher result into the requested representation.
//
// NoData passes through as NoData in every format. The only error is an unknown format.
func FormatOutput(result types.Result, format types.Format, opts ...Option) (types.Output, error) {
	format, err := util.ParseFormat(string(format))
	if err != nil {
		return types.Output{}, err
	}
	if result.IsNoData() {
		return types.NoDataOutput(format), nil
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	records := result.Records()
	if o.precision != nil {
		records = ApplyPrecision(records, *o.precision)
	}

	switch format {
	case types.FormatJSON:
		return types.Output{Format: format, Records: records}, nil
	case types.FormatTSV:
		text, err := WriteDelimited(records, columnsFor(records, o.columns))
		if err != nil {
			return types.Output{}, err
		}
		return types.Output{Format: format, Text: text}, nil
	default:
		return types.Output{Format: format, Text: WriteMarkdown(records, columnsFor(records, o.columns))}, nil
	}
}

// columnsFor returns the explicit columns if given, else the first record's field order.
// Records are assumed uniform; later records are not consulted.
func columnsFor(records []types.Record, explicit []string) []string {
	if explicit != nil {
		return explicit
	}
	if len(records) == 0 {
		return []string{}
	}
	return records[0].Keys()
}
