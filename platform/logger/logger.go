package logger

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	zl *zap.Logger
}

var (
	mu     sync.RWMutex
	global = &Logger{zl: zap.NewNop()}
)

// Init replaces the global logger. Until it is called every log call is a no-op.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), zap.NewAtomicLevelAt(lvl))

	mu.Lock()
	global = &Logger{zl: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

func L() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func With(fields ...Field) *Logger { return L().With(fields...) }

func Debug(ctx context.Context, msg string, fields ...Field) { L().Debug(ctx, msg, fields...) }
func Info(ctx context.Context, msg string, fields ...Field)  { L().Info(ctx, msg, fields...) }
func Warn(ctx context.Context, msg string, fields ...Field)  { L().Warn(ctx, msg, fields...) }
func Error(ctx context.Context, msg string, fields ...Field) { L().Error(ctx, msg, fields...) }

func Sync() error { return L().zl.Sync() }

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{zl: l.zl.With(fields...)}
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zl.Debug(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zl.Info(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zl.Warn(msg, append(fieldsFromContext(ctx), fields...)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zl.Error(msg, append(fieldsFromContext(ctx), fields...)...)
}

type ctxKey struct{}

// ContextWithFields attaches fields that every logger call made with ctx will carry.
func ContextWithFields(ctx context.Context, fields ...Field) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make([]Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func fieldsFromContext(ctx context.Context) []Field {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]Field)
	return fields
}
