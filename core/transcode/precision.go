package transcode

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/dwrod/fmpsdk/core/types"
)

// roundingPrecision bounds the digits a quantized number may carry; literals the
// API sends are far below it.
const roundingPrecision = 1000

// ApplyPrecision returns copies of records with every floating leaf rounded to at
// most k decimal places, descending into nested records and arrays.
// Integers, strings, booleans and nulls are left as they are.
func ApplyPrecision(records []types.Record, k uint) []types.Record {
	if records == nil {
		return nil
	}
	out := make([]types.Record, len(records))
	for i, rec := range records {
		out[i] = roundRecord(rec, k)
	}
	return out
}

func roundRecord(rec types.Record, k uint) types.Record {
	fields := rec.Fields()
	for i := range fields {
		fields[i].Value = roundValue(fields[i].Value, k)
	}
	return types.NewRecord(fields...)
}

func roundValue(v any, k uint) any {
	switch t := v.(type) {
	case types.Number:
		return RoundNumber(t, k)
	case types.Record:
		return roundRecord(t, k)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = roundValue(item, k)
		}
		return out
	default:
		return v
	}
}

// RoundNumber rounds a floating number half-to-even to at most k decimal places.
// A number already within k places is returned unchanged, so rounding is idempotent.
// The result is still a float, even at zero places.
func RoundNumber(n types.Number, k uint) types.Number {
	if !n.IsFloat() || uint(n.DecimalPlaces()) <= k {
		return n
	}

	ctx := apd.BaseContext.WithPrecision(roundingPrecision)
	ctx.Rounding = apd.RoundHalfEven
	var rounded apd.Decimal
	if _, err := ctx.Quantize(&rounded, n.Decimal(), -int32(k)); err != nil {
		return n
	}
	return types.NewNumberFromDecimal(&rounded, true)
}
