// Package main is the entry point for the patterns CLI.
package main

import (
	"os"

	"go.uber.org/zap"

	"pattern-catalog/cmd/cli/cmd"
	"pattern-catalog/internal/logging"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		logging.Sync()
		os.Exit(1)
	}
}
