package logging

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the severity of a log message
type LogLevel = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
	LevelFatal = zapcore.FatalLevel
)

// Logger provides structured logging functionality
type Logger struct {
	zl *zap.Logger
}

// NewLogger creates a JSON logger writing to output at the given level
func NewLogger(level string, output io.Writer) *Logger {
	return newLogger(level, output, zapcore.NewJSONEncoder)
}

// NewConsoleLogger creates a human-readable logger for development use
func NewConsoleLogger(level string, output io.Writer) *Logger {
	return newLogger(level, output, zapcore.NewConsoleEncoder)
}

func newLogger(level string, output io.Writer, newEncoder func(zapcore.EncoderConfig) zapcore.Encoder) *Logger {
	if output == nil {
		output = os.Stdout
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		newEncoder(encoderConfig),
		zapcore.AddSync(output),
		zap.NewAtomicLevelAt(ParseLogLevel(level)),
	)

	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(LevelFatal)))
}

// FromZap wraps an existing zap logger
func FromZap(zl *zap.Logger) *Logger {
	if zl == nil {
		zl = zap.NewNop()
	}
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return FromZap(zap.NewNop())
}

// ParseLogLevel maps a level name to a LogLevel, defaulting to INFO
func ParseLogLevel(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// WithFields returns a new log entry with the specified fields
func (l *Logger) WithFields(fields map[string]interface{}) *LogEntryBuilder {
	return (&LogEntryBuilder{logger: l}).WithFields(fields)
}

// WithField returns a new log entry with a single field
func (l *Logger) WithField(key string, value interface{}) *LogEntryBuilder {
	return (&LogEntryBuilder{logger: l}).WithField(key, value)
}

// WithError returns a new log entry with an error field
func (l *Logger) WithError(err error) *LogEntryBuilder {
	return &LogEntryBuilder{logger: l, err: err}
}

func (l *Logger) Debug(message string) { l.log(LevelDebug, message, nil, nil) }
func (l *Logger) Info(message string)  { l.log(LevelInfo, message, nil, nil) }
func (l *Logger) Warn(message string)  { l.log(LevelWarn, message, nil, nil) }
func (l *Logger) Error(message string) { l.log(LevelError, message, nil, nil) }

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(message string) { l.log(LevelFatal, message, nil, nil) }

func (l *Logger) log(level LogLevel, message string, fields []zap.Field, err error) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if ce := l.zl.Check(level, message); ce != nil {
		ce.Write(fields...)
	}
}

// LogEntryBuilder helps build log entries with fields
type LogEntryBuilder struct {
	logger *Logger
	fields []zap.Field
	err    error
}

// WithField adds a field to the log entry
func (b *LogEntryBuilder) WithField(key string, value interface{}) *LogEntryBuilder {
	b.fields = append(b.fields, zap.Any(key, value))
	return b
}

// WithFields adds multiple fields to the log entry
func (b *LogEntryBuilder) WithFields(fields map[string]interface{}) *LogEntryBuilder {
	for k, v := range fields {
		b.fields = append(b.fields, zap.Any(k, v))
	}
	return b
}

// WithError adds an error to the log entry
func (b *LogEntryBuilder) WithError(err error) *LogEntryBuilder {
	b.err = err
	return b
}

func (b *LogEntryBuilder) Debug(message string) { b.logger.log(LevelDebug, message, b.fields, b.err) }
func (b *LogEntryBuilder) Info(message string)  { b.logger.log(LevelInfo, message, b.fields, b.err) }
func (b *LogEntryBuilder) Warn(message string)  { b.logger.log(LevelWarn, message, b.fields, b.err) }
func (b *LogEntryBuilder) Error(message string) { b.logger.log(LevelError, message, b.fields, b.err) }

// Fatal logs a fatal message with fields and exits
func (b *LogEntryBuilder) Fatal(message string) { b.logger.log(LevelFatal, message, b.fields, b.err) }
