package transcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dwrod/fmpsdk/core/types"
)

// cellText renders one leaf value as table text.
func cellText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case types.Number:
		return t.Literal()
	case types.Record, []any:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	default:
		return fmt.Sprint(t)
	}
}

// delimitedCellText is cellText with strings that parseCell would re-type, such as
// "2024", "true" or "", written as JSON string literals instead.
func delimitedCellText(v any) string {
	s, ok := v.(string)
	if !ok {
		return cellText(v)
	}
	if back, ok := parseCell(s).(string); ok && back == s {
		return s
	}
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(b)
}

// parseCell is the inverse of delimitedCellText.
func parseCell(s string) any {
	switch s {
	case "":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := types.ParseNumber(s); err == nil {
		return n
	}
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		if v, err := types.DecodeJSON([]byte(s)); err == nil {
			return v
		}
	}
	return s
}

func rowCells(rec types.Record, columns []string, text func(any) string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		v, _ := rec.Get(col)
		cells[i] = text(v)
	}
	return cells
}
