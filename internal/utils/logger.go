package utils

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process logger. Development config unless ENV=prod.
func NewLogger() (*zap.Logger, error) {
	if os.Getenv("ENV") == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
