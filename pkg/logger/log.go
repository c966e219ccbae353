package logger

import (
	"context"

	"go.uber.org/zap/zapcore"
)

func (l *logger) Context(ctx context.Context) context.Context {
	_, ok := ctx.Value(&logCtx).(*logContext)
	if ok {
		return ctx
	}

	lgCtx := newLogContext(l.idGenerator.NewLogID(ctx))
	ctx = context.WithValue(ctx, &logCtx, lgCtx)
	return ctx
}

func (l *logger) ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	lgCtx, ok := ctx.Value(&logCtx).(*logContext)
	if !ok {
		lgCtx = newLogContextWithOptions(l.idGenerator.NewLogID(ctx), withRequestID(requestID))
		return context.WithValue(ctx, &logCtx, lgCtx)
	}

	lgCtx = newLogContextWithOptions(lgCtx.LogID, withRequestID(requestID))
	return context.WithValue(ctx, &logCtx, lgCtx)
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Debug(log, fields...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Info(log, fields...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Warn(log, fields...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	if ctx != nil {
		fields = append(fields, getAttrs(ctx)...)
	}
	l.lg.Error(log, fields...)
}
