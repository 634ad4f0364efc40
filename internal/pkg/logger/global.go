package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	globalMu     sync.RWMutex
	globalLogger *ZapLogger
)

// SetGlobalLogger installs the logger used by the package-level helpers.
// Call it once at startup.
func SetGlobalLogger(logger *ZapLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = logger
}

// GetGlobalLogger returns the installed logger, or a no-op logger before
// SetGlobalLogger ran
func GetGlobalLogger() *ZapLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return &ZapLogger{Logger: zap.NewNop()}
	}
	return globalLogger
}

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) {
	GetGlobalLogger().Info(msg, fields...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) {
	GetGlobalLogger().Warn(msg, fields...)
}

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) {
	GetGlobalLogger().Error(msg, fields...)
}
