package main

import (
	"fmt"

	"github.com/dwrod/fmpsdk/core/config"
	"github.com/dwrod/fmpsdk/core/fmpclient"
	"github.com/dwrod/fmpsdk/core/logging"
	"github.com/dwrod/fmpsdk/core/types"
	"github.com/dwrod/fmpsdk/core/util"
	"github.com/golang-sql/civil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by all subcommands once the root pre-run has loaded config.
type app struct {
	configPath string
	envFile    string
	output     string
	precision  int

	client *fmpclient.Client
	opts   types.OutputOptions
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "fmp",
		Long:          `Query the Financial Modeling Prep API and print the result as a table or JSON`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return a.setup(cmd)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", ".", "Directory containing fmp.yaml")
	flags.StringVar(&a.envFile, "env-file", ".env", "Env file loaded before reading the environment")
	flags.StringVarP(&a.output, "output", "o", "", "Output format: markdown, tsv or json (default from config)")
	flags.IntVarP(&a.precision, "precision", "p", -1, "Round floating values to this many decimal places")

	rootCmd.AddCommand(
		a.fetchCmd(),
		a.quoteCmd(),
		a.profileCmd(),
		a.statementCmd("income-statement", "Annual or quarterly income statements", (*fmpclient.Client).IncomeStatement),
		a.statementCmd("analyst-estimates", "Analyst revenue and earnings estimates", (*fmpclient.Client).AnalystEstimates),
		a.marketHoursCmd(),
		a.sectorsPerformanceCmd(),
		a.technicalIndicatorsCmd(),
		a.peersCmd(),
		a.treasuryCmd(),
		a.economicCmd(),
		a.segmentationCmd(),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	logging.L().Debug("running command", zap.String("command", cmd.CommandPath()))
	config.LoadEnv(a.envFile)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return errors.WithStack(err)
	}

	output := a.output
	if output == "" {
		output = cfg.Output
	}
	format, err := util.ParseFormat(output)
	if err != nil {
		return err
	}
	a.opts = types.OutputOptions{Format: format}
	if a.precision >= 0 {
		a.opts = a.opts.WithPrecision(uint(a.precision))
	}

	a.client, err = fmpclient.NewClient(cfg.APIKey, cfg.ClientOptions()...)
	return err
}

func (a *app) print(cmd *cobra.Command, out types.Output, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out.String())
	return errors.WithStack(err)
}

// parseDateFlag parses an optional YYYY-MM-DD flag value.
func parseDateFlag(name, value string) (*civil.Date, error) {
	if value == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", name)
	}
	return &d, nil
}
