package types

import "github.com/golang-sql/civil"

// QuoteInput requests real-time quotes for one or more tickers.
type QuoteInput struct {
	Symbols       []string `query:"-" validate:"required"`
	OutputOptions `query:"-"`
}

// CompanyProfileInput requests the profile of one company.
type CompanyProfileInput struct {
	Symbol        string `query:"-" validate:"required"`
	OutputOptions `query:"-"`
}

// FinancialStatementInput is shared by the statement and estimate endpoints.
// Period defaults to "annual".
type FinancialStatementInput struct {
	Symbol        string `query:"-" validate:"required"`
	Period        string `query:"period"`
	Limit         int    `query:"limit,omitempty"`
	OutputOptions `query:"-"`
}

type AnalystEstimatesInput = FinancialStatementInput

// MarketHoursInput has no parameters besides formatting.
type MarketHoursInput struct {
	OutputOptions `query:"-"`
}

type SectorsPerformanceInput struct {
	Limit         int `query:"limit,omitempty"`
	OutputOptions `query:"-"`
}

// TechnicalIndicatorsInput requests a technical indicator series.
// TimeDelta defaults to "daily", StatisticsType to "sma" and Period to 10.
type TechnicalIndicatorsInput struct {
	Symbol         string `query:"-" validate:"required"`
	TimeDelta      string `query:"-"`
	Period         int    `query:"period"`
	StatisticsType string `query:"type"`
	OutputOptions  `query:"-"`
}

type StockPeersInput struct {
	Symbol        string `query:"symbol" validate:"required"`
	OutputOptions `query:"-"`
}

// TreasuryRatesInput optionally bounds the date range.
type TreasuryRatesInput struct {
	From          *civil.Date `query:"from"`
	To            *civil.Date `query:"to"`
	OutputOptions `query:"-"`
}

// EconomicIndicatorsInput requests one economic series, e.g. "GDP" or "CPI".
type EconomicIndicatorsInput struct {
	Name          string      `query:"name" validate:"required"`
	From          *civil.Date `query:"from"`
	To            *civil.Date `query:"to"`
	OutputOptions `query:"-"`
}

// RevenueSegmentationInput requests the flat revenue-by-product breakdown.
// Period defaults to "quarter".
type RevenueSegmentationInput struct {
	Symbol        string `query:"symbol" validate:"required"`
	Period        string `query:"period"`
	Limit         *int   `query:"limit"`
	OutputOptions `query:"-"`
}
