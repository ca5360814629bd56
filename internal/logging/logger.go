package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "SLIDECAST_LOG_LEVEL"

// Options controls where and how much the logger writes.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means silent.
	Level string
	// Path is the log file. The presentation owns the terminal, so the
	// default is stderr only for commands that do not draw a full screen.
	Path string
}

// Initialize creates a new logger with the specified level writing to stderr.
// If level is empty, it checks SLIDECAST_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	return InitializeWithOptions(Options{Level: level})
}

// InitializeWithOptions is Initialize with an explicit output path.
func InitializeWithOptions(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	output := "stderr"
	if opts.Path != "" {
		output = opts.Path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{output},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if opts.Path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Silent until initialized so nothing leaks onto the presentation
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs a slide change
func LogTransition(cause string, from, to int, slideID string) {
	Debug("Slide transition",
		zap.String("cause", cause),
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("slide_id", slideID),
	)
}

// LogPause logs a pause toggle
func LogPause(paused bool, index int, progress float64) {
	Debug("Playback toggled",
		zap.Bool("paused", paused),
		zap.Int("index", index),
		zap.Float64("progress", progress),
	)
}

// LogRegistration logs a captured lead. This is the operator-visible record
// of a registration; nothing else stores it.
func LogRegistration(id, name, email, slideID string, at time.Time) {
	Info("Registration",
		zap.String("registration_id", id),
		zap.String("name", name),
		zap.String("email", email),
		zap.String("slide_id", slideID),
		zap.Time("submitted_at", at),
	)
}

// LogRemoteCommand logs a command received from a presenter remote
func LogRemoteCommand(remoteAddr, transport, action string, index int) {
	Info("Remote command",
		zap.String("remote_addr", remoteAddr),
		zap.String("transport", transport),
		zap.String("action", action),
		zap.Int("index", index),
	)
}

// LogConnection logs a remote client connection event
func LogConnection(remoteAddr string, event string) {
	Info("Connection event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
