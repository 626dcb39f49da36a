package logging

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLogger(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	L().Debug("hello")
	assert.Equal(t, 1, logs.FilterMessage("hello").Len())

	SetLogger(nil)
	require.NotNil(t, L())
	L().Info("dropped")
	assert.Equal(t, 1, logs.Len())
}

func TestSetLevel(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	require.NoError(t, SetLevel("warn"))
	assert.False(t, L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, L().Core().Enabled(zapcore.WarnLevel))

	assert.Error(t, SetLevel("loud"))
	assert.True(t, L().Core().Enabled(zapcore.WarnLevel), "a bad level leaves the logger alone")
}

func TestSetLoggerConcurrentWithReaders(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			L().Debug("reader")
		}()
	}
	wg.Wait()
	assert.NotNil(t, L())
}
