// Command hourglass-export renders a report export for a member straight to disk
package main

import (
	"os"

	"hourglass/internal/platform/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		logger.Get().Error().Err(err).Msg("export failed")
		os.Exit(1)
	}
}
