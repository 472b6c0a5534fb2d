// Package log provides logging to a file and, for errors, the console.
package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FileName is the name of the log file created in the log directory.
const FileName = "identicon.log"

// Logger writes structured entries to a log file and errors to stderr.
type Logger struct {
	*zap.SugaredLogger
	file *os.File
}

// New creates a logger appending JSON entries at level and above to
// <logDir>/identicon.log. Errors are also printed to stderr.
func New(logDir, level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig()), zapcore.AddSync(file), lvl),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), zapcore.Lock(os.Stderr), zapcore.ErrorLevel),
	)

	return &Logger{
		SugaredLogger: zap.New(core).Sugar(),
		file:          file,
	}, nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:       "L",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
}

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
	nop          = zap.NewNop().Sugar()
)

// Init initializes the global logger.
func Init(logDir, level string) error {
	logger, err := New(logDir, level)
	if err != nil {
		return err
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger != nil {
		_ = globalLogger.Close()
	}
	globalLogger = logger
	return nil
}

// S returns the global logger, or a no-op logger before Init.
func S() *zap.SugaredLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return nop
	}
	return globalLogger.SugaredLogger
}

// Debugf logs a formatted debug message with the global logger.
func Debugf(format string, args ...interface{}) {
	S().Debugf(format, args...)
}

// Infof logs a formatted message with the global logger.
func Infof(format string, args ...interface{}) {
	S().Infof(format, args...)
}

// Warnf logs a formatted warning with the global logger.
func Warnf(format string, args ...interface{}) {
	S().Warnf(format, args...)
}

// Close closes the global logger.
func Close() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	return err
}
