package utils

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv reads .env if present. Absence is fine; config falls back to
// its defaults.
func LoadEnv(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment and defaults")
		return
	}
	logger.Info(".env file loaded")
}
