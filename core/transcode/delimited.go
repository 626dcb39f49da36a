package transcode

import (
	"encoding/csv"
	"strings"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/pkg/errors"
)

// Delimiter separates cells in the compact delimited format, header included.
const Delimiter = '\t'

// WriteDelimited renders a header line of column names followed by one line per record.
// Cells that contain the delimiter, quotes or line breaks are quoted the csv way.
// Strings that would read back as another type are written as JSON string literals.
func WriteDelimited(records []types.Record, columns []string) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = Delimiter

	if err := writeDelimitedRow(w, &sb, columns); err != nil {
		return "", errors.Wrap(err, "failed to write header")
	}
	for i, rec := range records {
		if err := writeDelimitedRow(w, &sb, rowCells(rec, columns, delimitedCellText)); err != nil {
			return "", errors.Wrapf(err, "failed to write record %d", i)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", errors.WithStack(err)
	}
	return sb.String(), nil
}

// writeDelimitedRow writes a lone empty cell as a quoted empty field. The csv
// writer would emit a blank line, which the reader skips.
func writeDelimitedRow(w *csv.Writer, sb *strings.Builder, cells []string) error {
	if len(cells) != 1 || cells[0] != "" {
		return w.Write(cells)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	sb.WriteString("\"\"\n")
	return nil
}

// ParseDelimited reads WriteDelimited output back into records. Cells are re-typed:
// empty is null, true/false are booleans, JSON number literals are numbers and
// JSON string, object or array literals are decoded; everything else stays a string.
func ParseDelimited(text string) ([]types.Record, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = Delimiter

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delimited text")
	}
	if len(rows) == 0 {
		return []types.Record{}, nil
	}

	header := rows[0]
	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		fields := make([]types.Field, len(header))
		for i, col := range header {
			fields[i] = types.Field{Key: col, Value: parseCell(row[i])}
		}
		records = append(records, types.NewRecord(fields...))
	}
	return records, nil
}
