package types

import "strings"

// Format selects the representation FormatOutput produces.
type Format string

const (
	// FormatJSON is the structured, lossless representation: the records themselves.
	FormatJSON Format = "json"
	// FormatTSV is the compact delimited table: a header line then one tab-separated line per record.
	FormatTSV Format = "tsv"
	// FormatMarkdown is the presentation table: header, separator and one row per record.
	FormatMarkdown Format = "markdown"
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatMarkdown

// FormatValues lists the accepted format names.
var FormatValues = []string{string(FormatTSV), string(FormatJSON), string(FormatMarkdown)}

// OrDefault maps the zero value to DefaultFormat.
func (f Format) OrDefault() Format {
	if f == "" {
		return DefaultFormat
	}
	return f
}

// NoDataText is how the NoData sentinel renders as text.
const NoDataText = "No data returned"

// Output is the transcoded value returned to endpoint callers.
type Output struct {
	Format Format
	// Records holds the structured data for FormatJSON.
	Records []Record
	// Text holds the rendered table for FormatTSV and FormatMarkdown.
	Text   string
	noData bool
}

// NoDataOutput is the NoData sentinel carried through formatting unchanged.
func NoDataOutput(format Format) Output {
	return Output{Format: format.OrDefault(), noData: true}
}

// IsNoData reports whether the output stands for NoData.
func (o Output) IsNoData() bool {
	return o.noData
}

// String renders the output as text. Structured output is encoded as a JSON array.
func (o Output) String() string {
	if o.noData {
		return NoDataText
	}
	if o.Format == FormatJSON {
		b, err := MarshalRecords(o.Records)
		if err != nil {
			return err.Error()
		}
		return string(b)
	}
	return strings.TrimRight(o.Text, "\n")
}

// OutputOptions are the formatting knobs every endpoint accepts.
type OutputOptions struct {
	// Format defaults to markdown.
	Format Format
	// Precision rounds floating fields to at most this many decimal places when set.
	Precision *uint
}

// WithPrecision returns a copy of o with the precision set.
func (o OutputOptions) WithPrecision(k uint) OutputOptions {
	o.Precision = &k
	return o
}
