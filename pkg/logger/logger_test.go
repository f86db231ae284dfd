package logger_test

import (
	"context"
	"log/slog"
	"summit/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_DefaultAndContext(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Same(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("username", "nick"))
	logger.Info(ctx, "fetching profile")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "fetching profile", entries[0].Message)
	require.Equal(t, "nick", entries[0].ContextMap()["username"])
}

func TestNamed(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.Named(logger.WithLogger(context.Background(), zap.New(core)), "profile")

	logger.Warn(ctx, "odd card")
	require.Equal(t, "profile", logs.All()[0].LoggerName)
}

func TestIsDebug(t *testing.T) {
	ctx := context.Background()

	debugCore, _ := observer.New(zapcore.DebugLevel)
	require.True(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(debugCore))))

	infoCore, _ := observer.New(zapcore.InfoLevel)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(infoCore))))
}

func TestSetDefault_BridgesSlog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetDefault(zap.New(core))
	t.Cleanup(func() { logger.Setup(logger.DevelopmentEnvironment) })

	slog.Info("from slog", "attempt", 1)

	entries := logs.FilterMessage("from slog").All()
	require.Len(t, entries, 1)
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")
	logger.Sync(ctx)

	require.Equal(t, 4, logs.Len())
}
