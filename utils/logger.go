package utils

import (
	"log"

	"go.uber.org/zap"
)

// Logger is the shared structured logger. Services use it as the
// observability sink for non-fatal failures (source fetch errors,
// rejected model responses) that must not surface as blocking errors.
var Logger *zap.Logger

// InitLogger sets up the global zap logger.
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = logger
}

func init() {
	// Tests and library callers get a usable logger without InitLogger.
	Logger = zap.NewNop()
}
