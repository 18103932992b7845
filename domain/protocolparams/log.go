package protocolparams

import (
	"github.com/algoguard/algoguard/infrastructure/logger"
)

var log = logger.RegisterSubSystem("PRMS")
