package main

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func main() {
	// A missing .env is fine, the flags and the process environment still apply.
	_ = godotenv.Load()

	subCmd, config := parseCommandLine()
	if subCmd != startDaemonSubCmd {
		initCLILog()
	}

	var err error
	switch subCmd {
	case validateSubCmd:
		err = validate(config.(*validateConfig))
	case maxSendableSubCmd:
		err = maxSendable(config.(*maxSendableConfig))
	case minBalanceSubCmd:
		err = minBalance(config.(*minBalanceConfig))
	case syncSubCmd:
		err = syncAccounts(config.(*syncConfig))
	case importSubCmd:
		err = importSnapshots(config.(*importConfig))
	case startDaemonSubCmd:
		err = startDaemon(config.(*startDaemonConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}
