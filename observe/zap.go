package observe

import (
	"context"

	"go.uber.org/zap"
)

// zapLogger adapts a zap.Logger to the Logger interface.
type zapLogger struct {
	zl *zap.Logger
}

// NewZapLogger wraps an existing zap logger so hosts that already log
// through zap can hand it to this module unchanged. A nil logger yields
// a no-op Logger.
func NewZapLogger(zl *zap.Logger) Logger {
	if zl == nil {
		return NewNopLogger()
	}
	// Skip one frame so call sites report the caller, not this adapter.
	return &zapLogger{zl: zl.WithOptions(zap.AddCallerSkip(1))}
}

func (l *zapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, zapFields(fields)...)
}

func (l *zapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{zl: l.zl.With(zapFields(fields)...)}
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// Ensure zapLogger implements Logger
var _ Logger = (*zapLogger)(nil)
