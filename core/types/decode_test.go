package types

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type incomeStatement struct {
	Date     string       `json:"date"`
	Symbol   string       `json:"symbol"`
	Revenue  apd.Decimal  `json:"revenue"`
	EPS      float64      `json:"eps"`
	Shares   int64        `json:"weightedAverageShsOut"`
	Margin   *apd.Decimal `json:"margin"`
	FilingID string       `json:"cik"`
	Segments struct {
		IPhone float64 `json:"iPhone"`
	} `json:"segments"`
}

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecordsJSON([]byte(`[{
		"date":"2024-09-28","symbol":"AAPL","revenue":391035000000.0,"eps":6.11,
		"weightedAverageShsOut":15408095000,"margin":0.4621,"cik":320193,
		"segments":{"iPhone":201183000000},"ignored":"x"
	}]`))
	require.NoError(t, err)

	statements, err := DecodeRecords[incomeStatement](records)
	require.NoError(t, err)
	require.Len(t, statements, 1)

	s := statements[0]
	assert.Equal(t, "2024-09-28", s.Date)
	assert.Equal(t, "AAPL", s.Symbol)
	assert.Equal(t, "391035000000.0", s.Revenue.Text('f'))
	assert.Equal(t, 6.11, s.EPS)
	assert.Equal(t, int64(15408095000), s.Shares)
	require.NotNil(t, s.Margin)
	assert.Equal(t, "0.4621", s.Margin.Text('f'))
	assert.Equal(t, "320193", s.FilingID)
	assert.Equal(t, float64(201183000000), s.Segments.IPhone)
}

func TestDecodeRecordsEmpty(t *testing.T) {
	out, err := DecodeRecords[incomeStatement](nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecodeRecordsTypeMismatch(t *testing.T) {
	records := []Record{NewRecord(Field{Key: "eps", Value: "not a number"})}
	_, err := DecodeRecords[incomeStatement](records)
	assert.Error(t, err)
}
