package fmpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
	"github.com/golang-sql/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func requestedURL(t *testing.T, transport *mockTransport) *url.URL {
	t.Helper()
	require.Len(t, transport.urls, 1)
	u, err := url.Parse(transport.urls[0])
	require.NoError(t, err)
	return u
}

func TestIncomeStatementOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/income-statement/AAPL", r.URL.Path)
		assert.Equal(t, "annual", r.URL.Query().Get("period"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`[{"date":"2024-09-28","revenue":391035000000.0,"margin":0.4132156}]`))
	}))
	defer server.Close()

	client, err := NewClient(testAPIKey, WithBaseURL(server.URL), WithHTTPClient(server.Client()), WithLogger(zap.NewNop()))
	require.NoError(t, err)

	out, err := client.IncomeStatement(context.Background(), types.FinancialStatementInput{
		Symbol:        "AAPL",
		Period:        "ANNUAL",
		Limit:         1,
		OutputOptions: types.OutputOptions{Format: types.FormatTSV}.WithPrecision(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "date\trevenue\tmargin\n2024-09-28\t391035000000.0\t0.41", out.String())
}

func TestEndpointRequests(t *testing.T) {
	from := civil.Date{Year: 2024, Month: 1, Day: 1}
	to := civil.Date{Year: 2024, Month: 3, Day: 31}

	tests := []struct {
		name          string
		call          func(c *Client) (types.Output, error)
		expectedPath  string
		expectedQuery url.Values
	}{
		{
			name: "quote joins symbols",
			call: func(c *Client) (types.Output, error) {
				return c.Quote(context.Background(), types.QuoteInput{Symbols: []string{"AAPL", " MSFT ", ""}})
			},
			expectedPath:  "/api/v3/quote/AAPL,MSFT",
			expectedQuery: url.Values{"apikey": {testAPIKey}},
		},
		{
			name: "company profile",
			call: func(c *Client) (types.Output, error) {
				return c.CompanyProfile(context.Background(), types.CompanyProfileInput{Symbol: "BRK.B"})
			},
			expectedPath:  "/api/v3/profile/BRK.B",
			expectedQuery: url.Values{"apikey": {testAPIKey}},
		},
		{
			name: "analyst estimates default period",
			call: func(c *Client) (types.Output, error) {
				return c.AnalystEstimates(context.Background(), types.AnalystEstimatesInput{Symbol: "AAPL"})
			},
			expectedPath:  "/api/v3/analyst-estimates/AAPL",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "period": {"annual"}},
		},
		{
			name: "market hours",
			call: func(c *Client) (types.Output, error) {
				return c.MarketHours(context.Background(), types.MarketHoursInput{})
			},
			expectedPath:  "/api/v3/market-hours",
			expectedQuery: url.Values{"apikey": {testAPIKey}},
		},
		{
			name: "sectors performance",
			call: func(c *Client) (types.Output, error) {
				return c.SectorsPerformance(context.Background(), types.SectorsPerformanceInput{Limit: 5})
			},
			expectedPath:  "/api/v3/sectors-performance",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "limit": {"5"}},
		},
		{
			name: "technical indicators defaults",
			call: func(c *Client) (types.Output, error) {
				return c.TechnicalIndicators(context.Background(), types.TechnicalIndicatorsInput{Symbol: "AAPL"})
			},
			expectedPath:  "/api/v3/technical_indicator/daily/AAPL",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "period": {"10"}, "type": {"sma"}},
		},
		{
			name: "technical indicators normalizes case",
			call: func(c *Client) (types.Output, error) {
				return c.TechnicalIndicators(context.Background(), types.TechnicalIndicatorsInput{
					Symbol: "AAPL", TimeDelta: "1HOUR", StatisticsType: "EMA", Period: 20,
				})
			},
			expectedPath:  "/api/v3/technical_indicator/1hour/AAPL",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "period": {"20"}, "type": {"ema"}},
		},
		{
			name: "stock peers",
			call: func(c *Client) (types.Output, error) {
				return c.StockPeers(context.Background(), types.StockPeersInput{Symbol: "AAPL"})
			},
			expectedPath:  "/api/v4/stock_peers",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "symbol": {"AAPL"}},
		},
		{
			name: "treasury rates with range",
			call: func(c *Client) (types.Output, error) {
				return c.TreasuryRates(context.Background(), types.TreasuryRatesInput{From: &from, To: &to})
			},
			expectedPath:  "/api/v4/treasury",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "from": {"2024-01-01"}, "to": {"2024-03-31"}},
		},
		{
			name: "treasury rates without range",
			call: func(c *Client) (types.Output, error) {
				return c.TreasuryRates(context.Background(), types.TreasuryRatesInput{})
			},
			expectedPath:  "/api/v4/treasury",
			expectedQuery: url.Values{"apikey": {testAPIKey}},
		},
		{
			name: "economic indicators",
			call: func(c *Client) (types.Output, error) {
				return c.EconomicIndicators(context.Background(), types.EconomicIndicatorsInput{Name: "GDP", From: &from})
			},
			expectedPath:  "/api/v4/economic",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "name": {"GDP"}, "from": {"2024-01-01"}},
		},
		{
			name: "revenue segmentation defaults",
			call: func(c *Client) (types.Output, error) {
				return c.RevenueProductSegmentation(context.Background(), types.RevenueSegmentationInput{Symbol: "AAPL"})
			},
			expectedPath:  "/api/v4/revenue-product-segmentation",
			expectedQuery: url.Values{"apikey": {testAPIKey}, "symbol": {"AAPL"}, "period": {"quarter"}, "structure": {"flat"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &mockTransport{}
			client := newTestClient(t, transport)

			out, err := tt.call(client)
			require.NoError(t, err)
			assert.False(t, out.IsNoData())

			u := requestedURL(t, transport)
			assert.Equal(t, tt.expectedPath, u.Path)
			assert.Equal(t, tt.expectedQuery, u.Query())
		})
	}
}

func TestEndpointValidationHappensBeforeRequest(t *testing.T) {
	from := civil.Date{Year: 2024, Month: 6, Day: 1}
	to := civil.Date{Year: 2024, Month: 1, Day: 1}

	tests := []struct {
		name             string
		call             func(c *Client) (types.Output, error)
		invalidParameter bool
	}{
		{
			name: "bad period",
			call: func(c *Client) (types.Output, error) {
				return c.IncomeStatement(context.Background(), types.FinancialStatementInput{Symbol: "AAPL", Period: "monthly"})
			},
			invalidParameter: true,
		},
		{
			name: "bad output format",
			call: func(c *Client) (types.Output, error) {
				return c.MarketHours(context.Background(), types.MarketHoursInput{OutputOptions: types.OutputOptions{Format: "xml"}})
			},
			invalidParameter: true,
		},
		{
			name: "bad time delta",
			call: func(c *Client) (types.Output, error) {
				return c.TechnicalIndicators(context.Background(), types.TechnicalIndicatorsInput{Symbol: "AAPL", TimeDelta: "2min"})
			},
			invalidParameter: true,
		},
		{
			name: "bad statistics type",
			call: func(c *Client) (types.Output, error) {
				return c.TechnicalIndicators(context.Background(), types.TechnicalIndicatorsInput{Symbol: "AAPL", StatisticsType: "macd"})
			},
			invalidParameter: true,
		},
		{
			name: "bad segmentation format",
			call: func(c *Client) (types.Output, error) {
				return c.RevenueProductSegmentation(context.Background(), types.RevenueSegmentationInput{
					Symbol: "AAPL", OutputOptions: types.OutputOptions{Format: "csv"},
				})
			},
			invalidParameter: true,
		},
		{
			name: "missing symbol",
			call: func(c *Client) (types.Output, error) {
				return c.CompanyProfile(context.Background(), types.CompanyProfileInput{})
			},
		},
		{
			name: "blank symbols",
			call: func(c *Client) (types.Output, error) {
				return c.Quote(context.Background(), types.QuoteInput{Symbols: []string{" "}})
			},
		},
		{
			name: "missing indicator name",
			call: func(c *Client) (types.Output, error) {
				return c.EconomicIndicators(context.Background(), types.EconomicIndicatorsInput{})
			},
		},
		{
			name: "reversed date range",
			call: func(c *Client) (types.Output, error) {
				return c.TreasuryRates(context.Background(), types.TreasuryRatesInput{From: &from, To: &to})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &mockTransport{}
			client := newTestClient(t, transport)

			_, err := tt.call(client)
			require.Error(t, err)
			assert.Equal(t, tt.invalidParameter, errors.Is(err, util.ErrInvalidParameter))
			assert.Empty(t, transport.urls, "no request may be sent")
		})
	}
}

func TestEndpointNoData(t *testing.T) {
	client := newTestClient(t, respondWith(http.StatusForbidden, `{"Error Message":"Exclusive Endpoint"}`))

	for _, format := range []types.Format{types.FormatJSON, types.FormatTSV, types.FormatMarkdown} {
		out, err := client.StockPeers(context.Background(), types.StockPeersInput{
			Symbol:        "AAPL",
			OutputOptions: types.OutputOptions{Format: format},
		})
		require.NoError(t, err)
		assert.True(t, out.IsNoData())
		assert.Equal(t, types.NoDataText, out.String())
	}
}

func TestMarketHoursSingleObject(t *testing.T) {
	client := newTestClient(t, respondWith(http.StatusOK, `{"stockExchangeName":"New York Stock Exchange","isTheStockMarketOpen":true}`))

	out, err := client.MarketHours(context.Background(), types.MarketHoursInput{})
	require.NoError(t, err)
	assert.Equal(t, "| stockExchangeName | isTheStockMarketOpen |\n| --- | --- |\n| New York Stock Exchange | true |", out.String())
}

func TestRevenueProductSegmentationFlattens(t *testing.T) {
	body := `[{"2024-09-28":{"Mac":7744000000,"iPhone":46222000000}},{"2024-06-29":{"Mac":7009000000,"iPhone":39296000000}}]`

	client := newTestClient(t, respondWith(http.StatusOK, body))
	out, err := client.RevenueProductSegmentation(context.Background(), types.RevenueSegmentationInput{
		Symbol:        "AAPL",
		OutputOptions: types.OutputOptions{Format: types.FormatTSV},
	})
	require.NoError(t, err)
	assert.Equal(t, "date\tMac\tiPhone\n2024-09-28\t7744000000\t46222000000\n2024-06-29\t7009000000\t39296000000", out.String())

	client = newTestClient(t, respondWith(http.StatusOK, body))
	out, err = client.RevenueProductSegmentation(context.Background(), types.RevenueSegmentationInput{
		Symbol:        "AAPL",
		OutputOptions: types.OutputOptions{Format: types.FormatJSON},
	})
	require.NoError(t, err)
	assert.Equal(t, body, out.String())
}
