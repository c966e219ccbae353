package logger

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tgshop/pkg/config"
)

type Logger interface {
	Context(ctx context.Context) context.Context
	ContextWithRequestID(ctx context.Context, requestID string) context.Context

	Debug(ctx context.Context, log string, fields ...zapcore.Field)
	Info(ctx context.Context, log string, fields ...zapcore.Field)
	Warn(ctx context.Context, log string, fields ...zapcore.Field)
	Error(ctx context.Context, log string, fields ...zapcore.Field)
}

var Module = fx.Provide(func(cfg config.IConfig) Logger {
	return New(cfg.GetString("log.level"))
})

// New constructs a new logger.
func New(level string) Logger {
	stdoutSyncer := zapcore.Lock(os.Stdout)

	prodEncoderConfig := zap.NewProductionEncoderConfig()
	prodEncoderConfig.FunctionKey = "func"

	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewJSONEncoder(prodEncoderConfig),
			stdoutSyncer,
			getLevel(level),
		),
	)

	// AddCallerSkip skips the wrapper methods below in stack traces.
	log := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	l := logger{}
	l.lg = log
	l.idGenerator = defaultIDGenerator()
	return &l
}

type logger struct {
	lg          *zap.Logger
	idGenerator IDGenerator
}

func getLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.DebugLevel
	}
}
