package types

// Result is what the dispatcher hands back for one request: either a sequence of
// records (Ok) or the NoData sentinel.
//
// NoData stands for every failure the dispatcher swallows (transport errors,
// non-success statuses, empty or malformed bodies) and is kept distinct from an
// empty but successful sequence.
type Result struct {
	records []Record
	ok      bool
}

// Ok wraps a successful record sequence. A nil slice becomes an empty sequence.
func Ok(records []Record) Result {
	if records == nil {
		records = []Record{}
	}
	return Result{records: records, ok: true}
}

// NoData returns the "operation did not produce data" sentinel.
func NoData() Result {
	return Result{}
}

// IsNoData reports whether r is the sentinel.
func (r Result) IsNoData() bool {
	return !r.ok
}

// Records returns the record sequence, nil for NoData.
func (r Result) Records() []Record {
	return r.records
}

// Len returns the number of records; NoData has none.
func (r Result) Len() int {
	return len(r.records)
}
