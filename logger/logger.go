// Package logger provides the process-wide structured logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment.
// "production" uses the JSON encoder, anything else the console encoder.
func Init(env string) {
	once.Do(func() {
		var base *zap.Logger
		var err error

		if env == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}

		if err != nil {
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger, initializing a development logger
// when Init has not been called.
func Get() *zap.SugaredLogger {
	Init("development")
	return sugar
}

// Sync flushes buffered log entries.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
