package main

import (
	"context"
	"strings"

	"github.com/dwrod/fmpsdk/core/fmpclient"
	"github.com/dwrod/fmpsdk/core/transcode"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <v3|v4> <path> [key=value ...]",
		Short: "Call any endpoint path directly",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version types.APIVersion
			switch strings.ToLower(args[0]) {
			case "v3":
				version = types.APIVersionV3
			case "v4":
				version = types.APIVersionV4
			default:
				return errors.Errorf("unknown API version %q, expected v3 or v4", args[0])
			}

			query := types.Query{}
			for _, arg := range args[2:] {
				key, value, ok := strings.Cut(arg, "=")
				if !ok || key == "" {
					return errors.Errorf("invalid query parameter %q, expected key=value", arg)
				}
				query[key] = value
			}

			result := a.client.Fetch(cmd.Context(), version, args[1], query)
			out, err := transcode.FormatOutput(result, a.opts.Format, transcode.FromOutputOptions(a.opts)...)
			return a.print(cmd, out, err)
		},
	}
}

func (a *app) quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <symbol> [symbol ...]",
		Short: "Real-time quotes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.Quote(cmd.Context(), types.QuoteInput{Symbols: args, OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
}

func (a *app) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <symbol>",
		Short: "Company profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.CompanyProfile(cmd.Context(), types.CompanyProfileInput{Symbol: args[0], OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
}

type statementFunc func(*fmpclient.Client, context.Context, types.FinancialStatementInput) (types.Output, error)

func (a *app) statementCmd(use, short string, fn statementFunc) *cobra.Command {
	var period string
	var limit int
	cmd := &cobra.Command{
		Use:   use + " <symbol>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fn(a.client, cmd.Context(), types.FinancialStatementInput{
				Symbol:        args[0],
				Period:        period,
				Limit:         limit,
				OutputOptions: a.opts,
			})
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().StringVar(&period, "period", "annual", "annual or quarter")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of periods (0 for the API default)")
	return cmd
}

func (a *app) marketHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market-hours",
		Short: "Exchange trading hours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.MarketHours(cmd.Context(), types.MarketHoursInput{OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
}

func (a *app) sectorsPerformanceCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "sectors-performance",
		Short: "Current performance by sector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.SectorsPerformance(cmd.Context(), types.SectorsPerformanceInput{Limit: limit, OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of records (0 for the API default)")
	return cmd
}

func (a *app) technicalIndicatorsCmd() *cobra.Command {
	var timeDelta, statisticsType string
	var period int
	cmd := &cobra.Command{
		Use:   "technical-indicators <symbol>",
		Short: "Technical indicator series such as SMA or RSI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.TechnicalIndicators(cmd.Context(), types.TechnicalIndicatorsInput{
				Symbol:         args[0],
				TimeDelta:      timeDelta,
				Period:         period,
				StatisticsType: statisticsType,
				OutputOptions:  a.opts,
			})
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().StringVar(&timeDelta, "time-delta", "daily", "daily or an intraday interval from 1min to 4hour")
	cmd.Flags().StringVar(&statisticsType, "type", "sma", "Indicator type, e.g. sma, ema, rsi")
	cmd.Flags().IntVar(&period, "period", 10, "Indicator period")
	return cmd
}

func (a *app) peersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "peers <symbol>",
		Short: "Comparable companies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.client.StockPeers(cmd.Context(), types.StockPeersInput{Symbol: args[0], OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
}

func (a *app) treasuryCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "treasury",
		Short: "Treasury rates for all maturities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}
			out, err := a.client.TreasuryRates(cmd.Context(), types.TreasuryRatesInput{From: fromDate, To: toDate, OutputOptions: a.opts})
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "End date, YYYY-MM-DD")
	return cmd
}

func (a *app) economicCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "economic <name>",
		Short: "Economic indicator series, e.g. GDP or CPI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromDate, err := parseDateFlag("from", from)
			if err != nil {
				return err
			}
			toDate, err := parseDateFlag("to", to)
			if err != nil {
				return err
			}
			out, err := a.client.EconomicIndicators(cmd.Context(), types.EconomicIndicatorsInput{
				Name:          args[0],
				From:          fromDate,
				To:            toDate,
				OutputOptions: a.opts,
			})
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "End date, YYYY-MM-DD")
	return cmd
}

func (a *app) segmentationCmd() *cobra.Command {
	var period string
	var limit int
	cmd := &cobra.Command{
		Use:   "segmentation <symbol>",
		Short: "Revenue by product segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := types.RevenueSegmentationInput{Symbol: args[0], Period: period, OutputOptions: a.opts}
			if limit > 0 {
				input.Limit = &limit
			}
			out, err := a.client.RevenueProductSegmentation(cmd.Context(), input)
			return a.print(cmd, out, err)
		},
	}
	cmd.Flags().StringVar(&period, "period", "quarter", "annual or quarter")
	cmd.Flags().IntVar(&limit, "limit", 0, "Number of periods (0 for all)")
	return cmd
}
