package types

import (
	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

// DecodeJSON parses a JSON document into record leaf values, keeping object field order.
// Objects become Record, arrays []any, numbers Number.
func DecodeJSON(data []byte) (any, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON")
	}
	return convertValue(v)
}

func convertValue(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return string(b), nil
	case fastjson.TypeNumber:
		n, err := ParseNumber(string(v.MarshalTo(nil)))
		if err != nil {
			return nil, err
		}
		return n, nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			converted, err := convertValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return convertObject(obj)
	default:
		return nil, errors.Errorf("unsupported JSON value type %s", v.Type())
	}
}

func convertObject(obj *fastjson.Object) (Record, error) {
	rec := Record{fields: make([]Field, 0, obj.Len())}
	var visitErr error
	obj.Visit(func(key []byte, item *fastjson.Value) {
		if visitErr != nil {
			return
		}
		converted, err := convertValue(item)
		if err != nil {
			visitErr = errors.Wrapf(err, "field %s", key)
			return
		}
		rec.Set(string(key), converted)
	})
	if visitErr != nil {
		return Record{}, visitErr
	}
	return rec, nil
}

// DecodeRecordsJSON parses a JSON array of objects (or a single object) into records.
// It is the inverse of MarshalRecords.
func DecodeRecordsJSON(data []byte) ([]Record, error) {
	decoded, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	switch t := decoded.(type) {
	case Record:
		return []Record{t}, nil
	case []any:
		records := make([]Record, 0, len(t))
		for i, item := range t {
			rec, ok := item.(Record)
			if !ok {
				return nil, errors.Errorf("element %d is not an object", i)
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, errors.Errorf("expected JSON array or object, got %T", decoded)
	}
}
