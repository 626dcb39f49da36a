package util

var (
	PeriodValues = []string{"annual", "quarter"}

	TimeDeltaValues = []string{"1min", "5min", "15min", "30min", "1hour", "4hour"}

	TechnicalIndicatorsTimeDeltaValues = []string{"1min", "5min", "15min", "30min", "1hour", "4hour", "daily"}

	StatisticsTypeValues = []string{"sma", "ema", "wma", "dema", "tema", "williams", "rsi", "adx", "standardDeviation"}

	SeriesTypeValues = []string{"line"}

	SectorValues = []string{
		"Consumer Cyclical",
		"Energy",
		"Technology",
		"Industrials",
		"Financial Services",
		"Basic Materials",
		"Communication Services",
		"Consumer Defensive",
		"Healthcare",
		"Real Estate",
		"Utilities",
		"Industrial Goods",
		"Financial",
		"Services",
		"Conglomerates",
	}

	IndustryValues = []string{
		"Autos",
		"Banks",
		"Banks Diversified",
		"Software",
		"Banks Regional",
		"Beverages Alcoholic",
		"Beverages Brewers",
		"Beverages Non-Alcoholic",
		"Biotechnology",
		"Capital Markets",
		"Chemicals",
		"Consumer Electronics",
		"Drug Manufacturers",
		"Insurance",
		"Oil & Gas",
		"Real Estate Services",
		"Semiconductors",
		"Software—Application",
		"Software—Infrastructure",
		"Utilities—Regulated Electric",
	}
)
