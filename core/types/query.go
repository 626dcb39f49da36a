package types

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/golang-sql/civil"
)

// APIKeyParam is the query key the credential travels under on every request.
const APIKeyParam = "apikey"

// Query maps query parameter names to values. Nil values are omitted on encoding.
type Query map[string]any

// Clone returns a shallow copy, so callers can add keys without touching the original.
func (q Query) Clone() Query {
	out := make(Query, len(q)+1)
	for k, v := range q {
		out[k] = v
	}
	return out
}

// Values renders the query as url.Values with the credential set under APIKeyParam.
// A caller-supplied apikey entry is always overwritten.
func (q Query) Values(apiKey string) url.Values {
	values := url.Values{}
	for k, v := range q {
		if k == APIKeyParam {
			continue
		}
		s, ok := FormatQueryValue(v)
		if !ok {
			continue
		}
		values.Set(k, s)
	}
	values.Set(APIKeyParam, apiKey)
	return values
}

// Encode returns the sorted query string including the credential.
func (q Query) Encode(apiKey string) string {
	return q.Values(apiKey).Encode()
}

// FormatQueryValue converts a supported query value to its wire form.
// It returns false for nil values, which are left out of the request.
func FormatQueryValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case uint:
		return strconv.FormatUint(uint64(t), 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case civil.Date:
		return t.String(), true
	case *civil.Date:
		if t == nil {
			return "", false
		}
		return t.String(), true
	case *string:
		if t == nil {
			return "", false
		}
		return *t, true
	case *int:
		if t == nil {
			return "", false
		}
		return strconv.Itoa(*t), true
	case fmt.Stringer:
		return t.String(), true
	default:
		return fmt.Sprint(t), true
	}
}
