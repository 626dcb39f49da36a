package logging

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger is the process-wide logger used when a client is not given one explicitly.
// It is swapped atomically so SetLogger and SetLevel may race with readers.
var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(newDefault(zapcore.InfoLevel))
}

func newDefault(level zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// L returns the current process-wide logger.
func L() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the process-wide logger. A nil logger silences output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// SetLevel rebuilds the default logger at the given level, e.g. "debug" or "warn".
func SetLevel(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.Store(newDefault(lvl))
	return nil
}
