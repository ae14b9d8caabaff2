package main

import (
	"log/slog"
	"os"

	"github.com/petralia/cfdnsctl/internal/infrastructure/logger"
	"github.com/petralia/cfdnsctl/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("CFDNSCTL_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("CFDNSCTL_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("CFDNSCTL_DEBUG") != "",
	})

	cli.Execute()
}
