package logging

import (
	"reflect"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger defines a minimal, printf-style logging contract.
//
// Components depend on this interface rather than on zap directly so the
// backing implementation can be swapped without touching call sites.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return nopLogger{}
}

// IsNil reports whether logger is nil or wraps a nil pointer receiver.
func IsNil(logger Logger) bool {
	if logger == nil {
		return true
	}
	val := reflect.ValueOf(logger)
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return val.IsNil()
	default:
		return false
	}
}

// OrNop returns logger when non-nil, otherwise a no-op logger.
func OrNop(logger Logger) Logger {
	if IsNil(logger) {
		return Nop()
	}
	return logger
}

type zapPrintfLogger struct {
	sugar *zap.SugaredLogger
}

func (l *zapPrintfLogger) Debug(format string, args ...any) { l.sugar.Debugf(format, args...) }
func (l *zapPrintfLogger) Info(format string, args ...any)  { l.sugar.Infof(format, args...) }
func (l *zapPrintfLogger) Warn(format string, args ...any)  { l.sugar.Warnf(format, args...) }
func (l *zapPrintfLogger) Error(format string, args ...any) { l.sugar.Errorf(format, args...) }

var baseLogger = newBaseLogger("production")

// Configure rebuilds the process-wide base logger for the given environment.
// Development gets console encoding at debug level, everything else gets
// JSON at info level. Call once at startup before components grab loggers.
func Configure(environment string) {
	baseLogger = newBaseLogger(environment)
}

func newBaseLogger(environment string) *zap.Logger {
	var cfg zap.Config
	if environment == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewComponentLogger returns the default application logger scoped to a component.
func NewComponentLogger(component string) Logger {
	return &zapPrintfLogger{sugar: baseLogger.Sugar().Named(component)}
}

// Sync flushes any buffered log entries. Safe to call at shutdown.
func Sync() {
	_ = baseLogger.Sync()
}
