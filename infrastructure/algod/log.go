package algod

import (
	"github.com/algoguard/algoguard/infrastructure/logger"
)

var log = logger.RegisterSubSystem("ALGD")
