package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.SugaredLogger
	mu           sync.RWMutex
)

// Init initializes the global logger with JSON output
func Init(appEnv string) error {
	var config zap.Config

	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Encoding = "json"

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger.Sugar())
	return nil
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.SugaredLogger) {
	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

// GetLogger returns the global SugaredLogger for structured logging
func GetLogger() *zap.SugaredLogger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	// Fallback logger if Init wasn't called
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	SetLogger(logger.Sugar())
	return logger.Sugar()
}

// Close flushes any buffered logs
func Close() error {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(message string, fields ...interface{}) {
	GetLogger().Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	GetLogger().Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	GetLogger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	GetLogger().Errorw(message, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(message string, fields ...interface{}) {
	GetLogger().Fatalw(message, fields...)
}

// With returns a child logger carrying the given key/value pairs.
func With(fields ...interface{}) *zap.SugaredLogger {
	return GetLogger().With(fields...)
}

// WithRequest creates a logger with request context fields
func WithRequest(requestID string, endpoint string) *zap.SugaredLogger {
	return GetLogger().With(
		"request_id", requestID,
		"endpoint", endpoint,
	)
}
