// Package logger wraps zap behind the small interface the rest of the
// service consumes.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Field is an alias so callers never import zap directly.
type Field = zapcore.Field

var (
	String  = zap.String
	Int     = zap.Int
	Int64   = zap.Int64
	Bool    = zap.Bool
	Any     = zap.Any
	Error   = zap.Error
	Strings = zap.Strings
)

type LoggerI interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Panic(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)
}

type loggerImpl struct {
	zap *zap.Logger
}

func (l *loggerImpl) Debug(msg string, fields ...Field) { l.zap.Debug(msg, fields...) }
func (l *loggerImpl) Info(msg string, fields ...Field)  { l.zap.Info(msg, fields...) }
func (l *loggerImpl) Warn(msg string, fields ...Field)  { l.zap.Warn(msg, fields...) }
func (l *loggerImpl) Error(msg string, fields ...Field) { l.zap.Error(msg, fields...) }
func (l *loggerImpl) Panic(msg string, fields ...Field) { l.zap.Panic(msg, fields...) }
func (l *loggerImpl) Fatal(msg string, fields ...Field) { l.zap.Fatal(msg, fields...) }

func parseLevel(level string) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a production zap logger namespaced by service name.
func NewLogger(namespace, level string) LoggerI {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &loggerImpl{zap: logger.Named(namespace)}
}

// Cleanup flushes buffered entries; call it on shutdown.
func Cleanup(l LoggerI) error {
	impl, ok := l.(*loggerImpl)
	if !ok {
		return nil
	}
	return impl.zap.Sync()
}
