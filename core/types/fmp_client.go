package types

import "context"

type Client interface {
	// Fetch performs one request against the given API surface and returns its records or NoData
	Fetch(ctx context.Context, version APIVersion, path string, query Query) Result

	// Quote returns real-time quotes for the given symbols
	Quote(ctx context.Context, input QuoteInput) (Output, error)
	// CompanyProfile returns a company's profile
	CompanyProfile(ctx context.Context, input CompanyProfileInput) (Output, error)
	// IncomeStatement returns annual or quarterly income statements
	IncomeStatement(ctx context.Context, input FinancialStatementInput) (Output, error)
	// AnalystEstimates returns analyst forecasts of revenue and earnings
	AnalystEstimates(ctx context.Context, input AnalystEstimatesInput) (Output, error)
	// MarketHours returns exchange trading hours
	MarketHours(ctx context.Context, input MarketHoursInput) (Output, error)
	// SectorsPerformance returns the current per-sector performance
	SectorsPerformance(ctx context.Context, input SectorsPerformanceInput) (Output, error)
	// TechnicalIndicators returns a technical indicator series
	TechnicalIndicators(ctx context.Context, input TechnicalIndicatorsInput) (Output, error)
	// StockPeers returns companies comparable to the given one
	StockPeers(ctx context.Context, input StockPeersInput) (Output, error)
	// TreasuryRates returns treasury rates for all maturities
	TreasuryRates(ctx context.Context, input TreasuryRatesInput) (Output, error)
	// EconomicIndicators returns one economic indicator series
	EconomicIndicators(ctx context.Context, input EconomicIndicatorsInput) (Output, error)
	// RevenueProductSegmentation returns revenue broken down by product segment
	RevenueProductSegmentation(ctx context.Context, input RevenueSegmentationInput) (Output, error)
}
