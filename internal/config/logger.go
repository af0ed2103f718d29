package config

import (
	"log"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// LoadLogger builds the process logger: JSON at info level in production,
// console at debug level everywhere else.
func LoadLogger() *zap.Logger {
	loggerOnce.Do(func() {
		cfg := zap.NewProductionConfig()
		if !LoadAppConfig().IsProduction() {
			cfg = zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			log.Printf("Warning: could not build logger: %v", err)
			l = zap.NewNop()
		}
		logger = l.Named(LoadAppConfig().Name)
	})
	return logger
}
