// Package logging wraps a process-wide zap logger. Log lines go to stderr so that
// stdout only carries benchmark results.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	globalConfig *Config
	once         sync.Once
)

// Config holds the logging configuration
type Config struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json, console
}

func DefaultConfig() *Config {
	return &Config{
		Level:  "info",
		Format: "console",
	}
}

// Init installs the global logger. Only the first call has an effect.
func Init(config *Config) error {
	var err error
	once.Do(func() {
		globalConfig = config
		globalLogger, err = newLogger(config)
	})
	return err
}

// GetLogger returns the global logger, initializing it with DefaultConfig if needed.
func GetLogger() *zap.Logger {
	if globalLogger == nil {
		_ = Init(DefaultConfig())
	}
	return globalLogger
}

func newLogger(config *Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if config.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)

	// Skip the package-level wrappers below when reporting the caller.
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// SetLevel rebuilds the global logger at a new level.
func SetLevel(level string) error {
	if _, err := zapcore.ParseLevel(level); err != nil {
		return err
	}
	if globalLogger == nil {
		return Init(&Config{Level: level, Format: "console"})
	}
	if globalConfig == nil {
		globalConfig = DefaultConfig()
	}
	globalConfig.Level = level

	logger, err := newLogger(globalConfig)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process with status 1.
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return GetLogger().Sync()
}
