package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger создает и настраивает логгер.
// "production" включает JSON логгер, уровни debug/info/warn/error задают порог
// для логгера разработки.
func initLogger(logLevel string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if logLevel == "production" {
		logger, err = zap.NewProduction()
	} else {
		cfg := zap.NewDevelopmentConfig()
		if level, parseErr := zapcore.ParseLevel(logLevel); parseErr == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
