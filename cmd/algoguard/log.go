package main

import (
	"fmt"
	"os"

	"github.com/algoguard/algoguard/infrastructure/logger"
)

var log = logger.RegisterSubSystem("AGCL")

// initCLILog mirrors warnings of every subsystem to stderr. The daemon sets up its own files instead.
func initCLILog() {
	err := logger.BackendLog.AddLogWriter(os.Stderr, logger.LevelWarn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding stderr to the logger: %s\n", err)
		os.Exit(1)
	}
	err = logger.BackendLog.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the logger: %s\n", err)
		os.Exit(1)
	}
	err = logger.SetLogLevels(logger.LevelWarn.String())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting the log level: %s\n", err)
		os.Exit(1)
	}
}
