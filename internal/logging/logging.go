package logging

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger from the log settings. Unknown levels fall back to info.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoding := cfg.Encoding
	if encoding != "json" {
		encoding = "console"
	}

	zc := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encoding,
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Sampling:          nil,
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	if encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	if cfg.Sampling {
		zc.Sampling = &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		}
	}

	return zc.Build()
}

// WithRunID returns a child logger tagged with a fresh run id
func WithRunID(l *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return l.With(zap.String("run_id", id)), id
}

// EngineLogger adapts a zap logger to calculation.Logger
type EngineLogger struct {
	s *zap.SugaredLogger
}

var _ calculation.Logger = (*EngineLogger)(nil)

// NewEngineLogger wraps l. A nil logger yields a no-op logger.
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &EngineLogger{s: l.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (e *EngineLogger) Debugf(format string, args ...any) { e.s.Debugf(format, args...) }
func (e *EngineLogger) Infof(format string, args ...any)  { e.s.Infof(format, args...) }
func (e *EngineLogger) Warnf(format string, args ...any)  { e.s.Warnf(format, args...) }
func (e *EngineLogger) Errorf(format string, args ...any) { e.s.Errorf(format, args...) }
