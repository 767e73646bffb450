package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the process-wide structured logger
	Log = zap.NewNop()
	// SLog is the sugared form of Log
	SLog = Log.Sugar()
)

// Init builds the process logger. Development mode uses the console encoder.
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = l
	SLog = l.Sugar()
	return nil
}

// Sync flushes buffered log entries
func Sync() {
	_ = Log.Sync()
}
