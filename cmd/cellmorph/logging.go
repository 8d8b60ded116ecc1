package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/cellmorph/utils/rng"
)

// setupLogger configures a console logger for CLI commands.
func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// generatorEnum renders the generator names as a kong enum value list.
func generatorEnum() string {
	return strings.Join(rng.Names(), ",")
}
