package main

import (
	"github.com/algoguard/algoguard/cmd/algoguard/daemon/server"
	"github.com/algoguard/algoguard/infrastructure/algod"
)

func startDaemon(conf *startDaemonConfig) error {
	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return err
	}

	var algodClient *algod.Client
	if !conf.NoAlgod {
		algodClient = newAlgodClient(&conf.AlgodFlags)
	}

	return server.Start(&server.Config{
		Params:         conf.NetParams(),
		Listen:         conf.Listen,
		HTTPListen:     conf.HTTPListen,
		Store:          store,
		Algod:          algodClient,
		WatchAddresses: conf.WatchAddresses,
		SyncInterval:   conf.SyncInterval,
		Profile:        conf.Profile,
		LogLevel:       conf.LogLevel,
		LogDir:         conf.LogDir,
	})
}
