package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger with the given log level.
// Every entry carries the service name so settlement logs can be told apart
// from collaborator services in shared sinks.
func Initialize(level, service string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if service != "" {
		cfg.InitialFields = map[string]any{"service": service}
	}

	logger, err := cfg.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}

// Sync flushes buffered entries. Errors from syncing stderr are ignored.
func Sync() {
	_ = Log.Sync()
}
