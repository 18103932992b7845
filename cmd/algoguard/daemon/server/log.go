package server

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/algoguard/algoguard/infrastructure/logger"
	"github.com/algoguard/algoguard/util"
	"github.com/algoguard/algoguard/util/panics"
)

var (
	log   = logger.RegisterSubSystem("AGSD")
	spawn = panics.GoroutineWrapperFunc(log)

	defaultAppDir     = util.AppDir("algoguard")
	defaultLogFile    = filepath.Join(defaultAppDir, "daemon.log")
	defaultErrLogFile = filepath.Join(defaultAppDir, "daemon_err.log")
)

func initLog(logFile, errLogFile, logLevel string) {
	logger.InitLog(logFile, errLogFile, true)
	err := logger.ParseAndSetLogLevels(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting log level %s: %s\n", logLevel, err)
		os.Exit(1)
	}
}
