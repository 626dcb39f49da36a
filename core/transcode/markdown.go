package transcode

import (
	"strings"

	"github.com/dwrod/fmpsdk/core/types"
)

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

// WriteMarkdown renders a header row, a separator row and one row per record.
// Every row has exactly len(columns) cells.
func WriteMarkdown(records []types.Record, columns []string) string {
	lines := make([]string, 0, len(records)+2)
	lines = append(lines, markdownRow(columns))

	separator := make([]string, len(columns))
	for i := range separator {
		separator[i] = "---"
	}
	lines = append(lines, markdownRow(separator))

	for _, rec := range records {
		lines = append(lines, markdownRow(rowCells(rec, columns, cellText)))
	}
	return strings.Join(lines, "\n")
}

func markdownRow(cells []string) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(cellEscaper.Replace(c))
		sb.WriteString(" |")
	}
	return sb.String()
}
