package logger_test

import (
	"context"
	"testing"

	"promptparser/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			debug:       true,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
			debug:       false,
		},
		{
			name:        "explicit level overrides environment",
			environment: logger.ProductionEnvironment,
			level:       "debug",
			debug:       true,
		},
		{
			name:        "unknown level is ignored",
			environment: logger.DevelopmentEnvironment,
			level:       "loud",
			debug:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.SetupWithLevel(tt.environment, tt.level)
			})

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("promptID", "p-1"), zap.Int("attempt", 2))

	logger.Info(ctx, "processed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "processed", entries[0].Message)
	require.Equal(t, map[string]any{"promptID": "p-1", "attempt": int64(2)}, entries[0].ContextMap())
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	require.Same(t, custom, logger.Get(logger.WithLogger(context.Background(), custom)))
	require.NotSame(t, custom, logger.Get(context.Background()))
}

func TestSlog_WritesToZapCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("job started", "queue", "default")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "job started", entries[0].Message)
	require.Equal(t, "default", entries[0].ContextMap()["queue"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
