package types

import "time"

// CallMetadata describes how a single dispatcher call went. It never changes the
// Result; it only makes the collapsed NoData cause observable to callers that ask.
type CallMetadata struct {
	RequestID  string     `json:"request_id"`
	Version    APIVersion `json:"version"`
	Path       string     `json:"path"`
	StatusCode int        `json:"status_code,omitempty"`
	NoData     bool       `json:"no_data"`
	// Reason is a short machine-friendly cause for NoData, e.g. "status", "transport", "malformed"
	Reason     string        `json:"reason,omitempty"`
	RowsServed int           `json:"rows_served,omitempty"`
	Duration   time.Duration `json:"duration"`
}

// CallMetadataCollection aggregates metadata from several calls.
type CallMetadataCollection struct {
	TotalCalls      int     `json:"total_calls"`
	NoDataCalls     int     `json:"no_data_calls"`
	NoDataRate      float64 `json:"no_data_rate"`
	TotalRowsServed int     `json:"total_rows_served"`

	TotalDuration time.Duration `json:"total_duration"`

	Entries []CallMetadata `json:"entries"`
}

// AggregateCallMetadata combines multiple call metadata entries.
func AggregateCallMetadata(metadataList []CallMetadata) CallMetadataCollection {
	collection := CallMetadataCollection{
		Entries: metadataList,
	}

	for _, metadata := range metadataList {
		collection.TotalCalls++
		if metadata.NoData {
			collection.NoDataCalls++
		}
		if metadata.RowsServed > 0 {
			collection.TotalRowsServed += metadata.RowsServed
		}
		collection.TotalDuration += metadata.Duration
	}

	if collection.TotalCalls > 0 {
		collection.NoDataRate = float64(collection.NoDataCalls) / float64(collection.TotalCalls)
	}

	return collection
}
