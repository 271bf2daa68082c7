package internallogger

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption customizes a ZapLoggerAdapter at construction time.
type LoggerOption func(*settings)

type settings struct {
	level         zapcore.Level
	development   bool
	callerDepth   int
	initialFields map[string]interface{}
}

type sinkEntry struct {
	core zapcore.Core
	stop func()
}

// ZapLoggerAdapter implements types.Logger on top of a zap core. Additional
// sinks can be attached and removed at runtime; all sinks share one atomic
// level.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerDepth int
	development bool
	encConfig   zapcore.EncoderConfig
	baseCore    zapcore.Core
	baseFields  []zap.Field
	sinks       map[string]sinkEntry
}

// NewLogger initializes a new ZapLoggerAdapter writing JSON to stdout.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	s := settings{
		level:       zapcore.InfoLevel,
		callerDepth: 2,
	}
	for _, option := range options {
		option(&s)
	}

	encConfig := standardEncoderConfig()
	atomicLevel := zap.NewAtomicLevelAt(s.level)
	baseCore := zapcore.NewCore(zapcore.NewJSONEncoder(encConfig), zapcore.Lock(os.Stdout), atomicLevel)

	fields := make([]zap.Field, 0, len(s.initialFields))
	for key, value := range s.initialFields {
		if key == "" {
			continue
		}
		fields = append(fields, zap.Any(key, value))
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerDepth: s.callerDepth,
		development: s.development,
		encConfig:   encConfig,
		baseCore:    baseCore,
		baseFields:  fields,
		sinks:       make(map[string]sinkEntry),
	}
	z.rebuildLoggerLocked()
	return z
}

func (z *ZapLoggerAdapter) rebuildLoggerLocked() {
	cores := make([]zapcore.Core, 0, 1+len(z.sinks))
	cores = append(cores, z.baseCore)
	for _, entry := range z.sinks {
		cores = append(cores, entry.core)
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(z.callerDepth)}
	if z.development {
		opts = append(opts, zap.Development())
	}
	logger := zap.New(zapcore.NewTee(cores...), opts...)
	if len(z.baseFields) > 0 {
		logger = logger.With(z.baseFields...)
	}
	z.logger = logger
}

func standardEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     encodeRFC3339NanoUTC,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func encodeRFC3339NanoUTC(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(time.RFC3339Nano))
}
