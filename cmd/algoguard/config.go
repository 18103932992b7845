package main

import (
	"fmt"
	"os"
	"time"

	"github.com/algoguard/algoguard/infrastructure/config"
	"github.com/algoguard/algoguard/version"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	validateSubCmd    = "validate"
	maxSendableSubCmd = "max-sendable"
	minBalanceSubCmd  = "min-balance"
	syncSubCmd        = "sync"
	importSubCmd      = "import"
	startDaemonSubCmd = "start-daemon"
)

const (
	defaultListen         = "localhost:8183"
	defaultAlgodAddress   = "http://localhost:4001"
	defaultSyncInterval   = time.Minute
	defaultRedisTTL = 10 * time.Minute
)

type configFlags struct {
	ShowVersion bool `short:"V" long:"version" description:"Display version information and exit"`
	config.NetworkFlags
}

// StoreFlags select the snapshot store.
type StoreFlags struct {
	StoreDir      string        `long:"store-dir" description:"Directory of the local snapshot store (default: ~/.algoguard/<network>/snapshots)"`
	RedisAddress  string        `long:"redis-address" env:"REDIS_ADDRESS" description:"Use the redis server at this address as the snapshot store"`
	RedisPassword string        `long:"redis-password" env:"REDIS_PASSWORD" description:"Password of the redis server"`
	RedisDB       int           `long:"redis-db" description:"Redis database number"`
	RedisTTL      time.Duration `long:"redis-ttl" description:"How long synced accounts stay usable in redis"`
}

// AlgodFlags locate the algod node accounts are synced from.
type AlgodFlags struct {
	AlgodAddress string `long:"algod-address" env:"ALGOD_ADDRESS" description:"Address of the algod REST API"`
	AlgodToken   string `long:"algod-token" env:"ALGOD_TOKEN" description:"API token of the algod node"`
}

type validateConfig struct {
	DaemonAddress string `long:"daemonaddress" short:"d" description:"Validate through the algoguard daemon at this address instead of the local store"`
	Sender        string `long:"sender" short:"s" description:"The address sending the transfer" required:"true"`
	Receiver      string `long:"receiver" short:"r" description:"The address receiving the transfer"`
	AssetID       uint64 `long:"asset-id" short:"a" description:"The asset to transfer, 0 for ALGO"`
	Amount        string `long:"amount" short:"v" description:"The amount to transfer, in whole units (e.g. 12.5)" required:"true"`
	StoreFlags
	config.NetworkFlags
}

type maxSendableConfig struct {
	DaemonAddress string `long:"daemonaddress" short:"d" description:"Query the algoguard daemon at this address instead of the local store"`
	Address       string `long:"address" short:"s" description:"The account to check" required:"true"`
	AssetID       uint64 `long:"asset-id" short:"a" description:"The asset to check, 0 for ALGO"`
	StoreFlags
	config.NetworkFlags
}

type minBalanceConfig struct {
	Address string `long:"address" short:"s" description:"The account to check" required:"true"`
	StoreFlags
	config.NetworkFlags
}

type syncConfig struct {
	DaemonAddress string   `long:"daemonaddress" short:"d" description:"Ask the algoguard daemon at this address to sync instead of syncing the local store"`
	Addresses     []string `long:"address" short:"s" description:"An account to sync, may be repeated"`
	StoreFlags
	AlgodFlags
	config.NetworkFlags
}

type importConfig struct {
	File string `long:"file" short:"f" description:"JSON file with the accounts and assets to import" required:"true"`
	StoreFlags
	config.NetworkFlags
}

type startDaemonConfig struct {
	Listen         string        `long:"listen" short:"l" description:"Address to listen on for gRPC"`
	HTTPListen     string        `long:"http-listen" description:"Address to serve the JSON API on, disabled when empty"`
	WatchAddresses []string      `long:"watch" short:"w" description:"An account to keep synced, may be repeated"`
	SyncInterval   time.Duration `long:"sync-interval" description:"How often watched accounts are synced"`
	NoAlgod        bool          `long:"no-algod" description:"Don't connect to algod, use only the static params and stored snapshots"`
	Profile        string        `long:"profile" description:"Enable HTTP profiling on given port -- NOTE port must be between 1024 and 65536"`
	LogLevel       string        `long:"loglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	LogDir         string        `long:"logdir" description:"Directory to log output"`
	StoreFlags
	AlgodFlags
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	validateConf := &validateConfig{}
	parser.AddCommand(validateSubCmd, "Validates a transfer amount",
		"Validates a transfer amount against the sender's snapshot and prints the outcome", validateConf)

	maxSendableConf := &maxSendableConfig{}
	parser.AddCommand(maxSendableSubCmd, "Shows how much of an asset an account can send",
		"Shows how much of an asset an account can send, keeping back the minimum balance and fee for ALGO",
		maxSendableConf)

	minBalanceConf := &minBalanceConfig{}
	parser.AddCommand(minBalanceSubCmd, "Shows the minimum balance of an account",
		"Shows the minimum ALGO balance of an account and compares it with the one reported by algod",
		minBalanceConf)

	syncConf := &syncConfig{}
	parser.AddCommand(syncSubCmd, "Syncs accounts from algod",
		"Fetches accounts and the metadata of their assets from algod into the snapshot store", syncConf)

	importConf := &importConfig{}
	parser.AddCommand(importSubCmd, "Imports snapshots from a file",
		"Imports account snapshots and asset metadata from a JSON file into the snapshot store", importConf)

	startDaemonConf := &startDaemonConfig{
		Listen:       defaultListen,
		SyncInterval: defaultSyncInterval,
		LogLevel:     "info",
	}
	parser.AddCommand(startDaemonSubCmd, "Start the algoguard daemon",
		"Start the algoguard daemon, serving validations over gRPC", startDaemonConf)

	_, err := parser.Parse()

	if cfg.ShowVersion {
		fmt.Println("algoguard version", version.Version())
		os.Exit(0)
	}

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	switch parser.Command.Active.Name {
	case validateSubCmd:
		combineNetworkFlags(&validateConf.NetworkFlags, &cfg.NetworkFlags)
		err := validateConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = validateConf
	case maxSendableSubCmd:
		combineNetworkFlags(&maxSendableConf.NetworkFlags, &cfg.NetworkFlags)
		err := maxSendableConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = maxSendableConf
	case minBalanceSubCmd:
		combineNetworkFlags(&minBalanceConf.NetworkFlags, &cfg.NetworkFlags)
		err := minBalanceConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = minBalanceConf
	case syncSubCmd:
		combineNetworkFlags(&syncConf.NetworkFlags, &cfg.NetworkFlags)
		err := syncConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = syncConf
	case importSubCmd:
		combineNetworkFlags(&importConf.NetworkFlags, &cfg.NetworkFlags)
		err := importConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = importConf
	case startDaemonSubCmd:
		combineNetworkFlags(&startDaemonConf.NetworkFlags, &cfg.NetworkFlags)
		err := startDaemonConf.ResolveNetwork(parser)
		if err != nil {
			printErrorAndExit(err)
		}
		config = startDaemonConf
	}

	return parser.Command.Active.Name, config
}

func combineNetworkFlags(dst, src *config.NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Betanet = dst.Betanet || src.Betanet
	if dst.OverrideParamsFile == "" {
		dst.OverrideParamsFile = src.OverrideParamsFile
	}
}
