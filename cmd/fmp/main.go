// fmp command line client
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dwrod/fmpsdk/core/logging"
	"go.uber.org/zap"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logging.L().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		_ = logging.L().Sync()
		os.Exit(1)
	}
	_ = logging.L().Sync()
}
