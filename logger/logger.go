package logger

import (
	"context"

	"go.uber.org/zap"
)

// Provider resolves the logger to use for the current request context.
type Provider func(ctx context.Context) ILogger

type ctxLoggerKey struct{}

var defaultLogger = New(zap.Must(zap.NewProduction()).Sugar())

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New wraps a zap sugared logger.
func New(sugar *zap.SugaredLogger) ILogger {
	return &zapLogger{sugar: sugar}
}

// WithLogger stores a logger on the context for FromContext to pick up.
func WithLogger(ctx context.Context, l ILogger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}

// FromContext returns the logger stored on the context, falling back to
// the process-wide default.
func FromContext(ctx context.Context) ILogger {
	if l, ok := ctx.Value(ctxLoggerKey{}).(ILogger); ok {
		return l
	}

	return defaultLogger
}

func (l *zapLogger) Debug(v ...interface{}) {
	l.sugar.Debug(v...)
}

func (l *zapLogger) Info(v ...interface{}) {
	l.sugar.Info(v...)
}

func (l *zapLogger) Warning(v ...interface{}) {
	l.sugar.Warn(v...)
}

func (l *zapLogger) Error(v ...interface{}) {
	l.sugar.Error(v...)
}

func (l *zapLogger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *zapLogger) Infof(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *zapLogger) Warningf(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *zapLogger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}
