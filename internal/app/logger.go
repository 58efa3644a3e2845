package app

import (
	"github.com/guttosm/multilingual/config"
	"github.com/guttosm/multilingual/internal/logger"
)

// InitializeLogger initializes the global logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
