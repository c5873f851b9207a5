package querybuilder

import (
	"fmt"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

// Logger receives built statements at debug level and rejected ones at warn.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type zapLogger struct {
	l *zap.SugaredLogger
}

var nopLogger Logger = &zapLogger{zap.NewNop().Sugar()}

// NewLogger builds a zap backed Logger using zap's development or production preset.
func NewLogger(env LogLevel) (Logger, error) {
	if env == LogLevelDev {
		l, err := zap.NewDevelopmentConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else if env == LogLevelProd {
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else {
		return nil, fmt.Errorf("log level should be either LogLevelDev or LogLevelProd")
	}
}

// FromZap wraps an already configured zap logger.
func FromZap(l *zap.Logger) Logger {
	if l == nil {
		return nopLogger
	}
	return &zapLogger{l.Sugar()}
}

func (z *zapLogger) Debugf(format string, args ...any) {
	format = fmt.Sprintf("[DEBUG] %s", format)
	z.l.Debugf(format, args...)
}

func (z *zapLogger) Warnf(format string, args ...any) {
	format = fmt.Sprintf("[WARN] %s", format)
	z.l.Warnf(format, args...)
}
