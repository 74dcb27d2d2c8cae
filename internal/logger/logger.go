package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide SugaredLogger. It starts as a no-op so packages
// can log safely before Initialize runs.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize replaces Log with a production zap logger at the given level.
// Timestamps are ISO 8601 and every entry carries the service name.
func Initialize(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{"service": "hygiene-api"}

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar()
	return nil
}
