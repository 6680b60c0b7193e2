// Package logger provides the process-wide structured logger.
package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu    sync.Mutex
	sugar *zap.SugaredLogger
)

// Init builds the global logger for the given environment.
// "production" gets the JSON encoder, anything else the console encoder.
// Only the first call has an effect.
func Init(env string) {
	mu.Lock()
	defer mu.Unlock()

	if sugar != nil {
		return
	}

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
}

// Get returns the global logger, initialising a development logger if
// Init was never called.
func Get() *zap.SugaredLogger {
	mu.Lock()
	l := sugar
	mu.Unlock()

	if l == nil {
		Init("development")
		return Get()
	}
	return l
}

// Set replaces the global logger. Used by tests to capture output.
func Set(l *zap.SugaredLogger) {
	mu.Lock()
	defer mu.Unlock()
	sugar = l
}

// Sync flushes any buffered log entries. Call this before exit.
func Sync() {
	mu.Lock()
	l := sugar
	mu.Unlock()

	if l != nil {
		_ = l.Sync()
	}
}
