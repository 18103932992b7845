package amountvalidator

import (
	"github.com/algoguard/algoguard/infrastructure/logger"
)

var log = logger.RegisterSubSystem("AVAL")
