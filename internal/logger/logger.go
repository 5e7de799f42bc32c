package logger

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Debug(msg string, fields ...zap.Field)
	Sugar() *zap.SugaredLogger
	// Zap exposes the underlying logger for library packages.
	Zap() *zap.Logger
}

type ZapLogger struct {
	*zap.Logger
}

// LoggerOptions configures the logger
type LoggerOptions struct {
	Verbose bool
	Writer  io.Writer
	NoColor bool
}

// NewLogger creates a logger writing to stderr
func NewLogger(verbose bool) Logger {
	return NewLoggerWithOptions(LoggerOptions{
		Verbose: verbose,
		Writer:  os.Stderr,
	})
}

// NewLoggerWithWriter creates a logger with a custom writer
func NewLoggerWithWriter(verbose bool, w io.Writer) Logger {
	return NewLoggerWithOptions(LoggerOptions{
		Verbose: verbose,
		Writer:  w,
	})
}

// NewLoggerWithOptions creates a logger with full configuration options.
// Log output goes to its own writer so that decoded events on stdout stay
// machine readable.
func NewLoggerWithOptions(opts LoggerOptions) Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stderr
	}

	levelEncoder := coloredLevelEncoder
	timeEnc := timeEncoder
	if opts.NoColor {
		levelEncoder = zapcore.CapitalLevelEncoder
		timeEnc = zapcore.TimeEncoderOfLayout("[15:04:05]")
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeTime:     timeEnc,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(opts.Writer),
		level,
	)

	return &ZapLogger{Logger: zap.New(core)}
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.Logger
}

func coloredLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var levelColor *color.Color
	var levelText string

	switch l {
	case zapcore.DebugLevel:
		levelColor = color.New(color.FgWhite)
		levelText = "DEBUG"
	case zapcore.InfoLevel:
		levelColor = color.New(color.FgBlue)
		levelText = "INFO"
	case zapcore.WarnLevel:
		levelColor = color.New(color.FgYellow)
		levelText = "WARN"
	case zapcore.ErrorLevel:
		levelColor = color.New(color.FgRed)
		levelText = "ERROR"
	default:
		levelColor = color.New(color.FgRed, color.Bold)
		levelText = l.CapitalString()
	}

	enc.AppendString(levelColor.Sprint(levelText))
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgWhite).Sprintf("[%s]", t.Format("15:04:05")))
}

var globalLogger Logger

// InitGlobalLogger initializes the global logger
func InitGlobalLogger(verbose bool) {
	globalLogger = NewLogger(verbose)
}

// InitGlobalLoggerWithOptions initializes the global logger with full options
func InitGlobalLoggerWithOptions(opts LoggerOptions) {
	globalLogger = NewLoggerWithOptions(opts)
}

// GetLogger returns the global logger
func GetLogger() Logger {
	if globalLogger == nil {
		globalLogger = NewLogger(false)
	}
	return globalLogger
}
