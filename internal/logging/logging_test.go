package logging

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.LogConfig
		level zapcore.Level
	}{
		{"debug console", config.LogConfig{Level: "debug", Encoding: "console"}, zapcore.DebugLevel},
		{"warn json", config.LogConfig{Level: "WARN", Encoding: "json", Sampling: true}, zapcore.WarnLevel},
		{"unknown level falls back", config.LogConfig{Level: "chatty", Encoding: "xml"}, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			if tt.level > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l, id := WithRunID(zap.New(core))

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	l.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, id, logs.All()[0].ContextMap()["run_id"])
}

func TestEngineLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	el := NewEngineLogger(zap.New(core))

	el.Debugf("year %d", 2035)
	el.Infof("pot %s", "1000.00")
	el.Warnf("exhausted")
	el.Errorf("boom")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "year 2035", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	assert.NotPanics(t, func() { NewEngineLogger(nil).Infof("ignored") })
}
