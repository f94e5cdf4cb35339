package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marketbay/vendor-ledger-service/internal/config"
)

// New builds the service logger from the log_config section.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()

	if cfg.LogFormat == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	if cfg.LogOutput != "" {
		zapCfg.OutputPaths = []string{cfg.LogOutput}
		zapCfg.ErrorOutputPaths = []string{cfg.LogOutput}
	}

	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.MessageKey = "msg"
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder

	return zapCfg.Build()
}
