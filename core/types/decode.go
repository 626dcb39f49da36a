package types

import (
	"reflect"

	"github.com/cockroachdb/apd/v3"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var decimalType = reflect.TypeOf(apd.Decimal{})

// DecodeRecords decodes records into a slice of T.
// T is a struct type whose fields are matched to record fields by json tag,
// falling back to a case-insensitive field name match. Fields without a
// destination are ignored.
func DecodeRecords[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for i, rec := range records {
		var item T
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:       numberDecodeHook,
			TagName:          "json",
			WeaklyTypedInput: true,
			Result:           &item,
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if err := decoder.Decode(rec.Map()); err != nil {
			return nil, errors.Wrapf(err, "failed to decode record %d into %T", i, item)
		}
		out = append(out, item)
	}
	return out, nil
}

// numberDecodeHook converts Number leaves into whatever the destination field needs.
func numberDecodeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(Number)
	if !ok {
		return data, nil
	}

	if to == decimalType {
		return *n.Decimal(), nil
	}
	if to.Kind() == reflect.Ptr && to.Elem() == decimalType {
		return n.Decimal(), nil
	}

	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := n.Int64()
		if err != nil {
			return nil, errors.Wrapf(err, "number %s does not fit %s", n, to)
		}
		return i, nil
	case reflect.String:
		return n.String(), nil
	default:
		f, err := n.Float64()
		if err != nil {
			return nil, errors.Wrapf(err, "number %s is not a float", n)
		}
		return f, nil
	}
}
