package logger

import (
	"context"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	ServiceName string
	Environment string
	// Level is a zap level name ("debug", "info", ...). Empty picks debug outside
	// production and info in production.
	Level  string
	Output io.Writer
}

func (c Config) isProduction() bool {
	return c.Environment == "production"
}

type zapLogger struct {
	log *zap.Logger
}

// NewLogger builds a JSON logger. Production output is sampled.
func NewLogger(cfg Config) (Logger, error) {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	level := zapcore.DebugLevel
	if cfg.isProduction() {
		encoderConfig = zap.NewProductionEncoderConfig()
		level = zapcore.InfoLevel
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(out), level)
	if cfg.isProduction() {
		core = zapcore.NewSamplerWithOptions(core, time.Second, 1, 100)
	}

	l := zap.New(core).With(
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Environment),
	)
	return &zapLogger{log: l}, nil
}

// NewFromZap wraps an existing zap logger, e.g. one built with zaptest/observer.
func NewFromZap(l *zap.Logger) Logger {
	return &zapLogger{log: l}
}

func NewNop() Logger {
	return &zapLogger{log: zap.NewNop()}
}

func (z *zapLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	z.write(ctx, zapcore.DebugLevel, msg, fields)
}

func (z *zapLogger) Info(ctx context.Context, msg string, fields ...Field) {
	z.write(ctx, zapcore.InfoLevel, msg, fields)
}

func (z *zapLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	z.write(ctx, zapcore.WarnLevel, msg, fields)
}

func (z *zapLogger) Error(ctx context.Context, msg string, fields ...Field) {
	z.write(ctx, zapcore.ErrorLevel, msg, fields)
}

func (z *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{log: z.log.With(toZapFields(fields)...)}
}

// write converts fields only when the entry passes the level check.
func (z *zapLogger) write(ctx context.Context, level zapcore.Level, msg string, fields []Field) {
	ce := z.log.Check(level, msg)
	if ce == nil {
		return
	}
	ce.Write(withTrace(ctx, toZapFields(fields))...)
}

func withTrace(ctx context.Context, fields []zap.Field) []zap.Field {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return fields
	}
	return append(fields,
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

func toZapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields)+2)
	for _, f := range fields {
		out = append(out, toZapField(f))
	}
	return out
}

// toZapField falls back to zap.Any when the value does not match its kind.
func toZapField(f Field) zap.Field {
	val := f.Value
	if fn, ok := val.(func() any); ok {
		val = fn()
	}

	switch f.Kind {
	case KindString:
		if v, ok := val.(string); ok {
			return zap.String(f.Key, v)
		}
	case KindInt:
		if v, ok := val.(int); ok {
			return zap.Int(f.Key, v)
		}
	case KindFloat64:
		if v, ok := val.(float64); ok {
			return zap.Float64(f.Key, v)
		}
	case KindBool:
		if v, ok := val.(bool); ok {
			return zap.Bool(f.Key, v)
		}
	case KindDuration:
		if v, ok := val.(time.Duration); ok {
			return zap.Duration(f.Key, v)
		}
	case KindError:
		if v, ok := val.(error); ok {
			return zap.Error(v)
		}
	}
	return zap.Any(f.Key, val)
}
