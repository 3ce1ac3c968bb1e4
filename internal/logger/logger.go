package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New builds a zap logger for the given mode ("prod"/"production" selects
// the JSON production config, anything else the console development config).
func New(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return zl.Sugar(), nil
}

// Nop returns a logger that discards everything, for tests and for callers
// that don't care about the trigger path's diagnostics.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
