package main

import (
	"context"
	"fmt"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/client"
	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/minimumbalance"
	"github.com/pkg/errors"
)

func syncAccounts(conf *syncConfig) error {
	if conf.DaemonAddress != "" {
		return syncThroughDaemon(conf.DaemonAddress, conf.Addresses)
	}
	if len(conf.Addresses) == 0 {
		return errors.New("at least one --address is required when syncing the local store")
	}

	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return err
	}
	defer store.Close()

	algodClient := newAlgodClient(&conf.AlgodFlags)
	calculator := minimumbalance.NewCalculator(conf.NetParams())

	ctx, cancel := context.WithTimeout(context.Background(), daemonTimeout)
	defer cancel()

	failed := 0
	for _, address := range conf.Addresses {
		account, assets, err := algodClient.SyncAccount(ctx, address)
		if err != nil {
			log.Warnf("Couldn't sync account %s: %s", address, err)
			failed++
			continue
		}
		err = calculator.CheckReported(account)
		if err != nil {
			log.Warnf("%s", err)
		}
		err = store.SaveAccount(ctx, account, assets)
		if err != nil {
			return err
		}
		fmt.Printf("Synced %s with %d assets\n", address, len(assets))
	}

	if failed > 0 {
		return errors.Errorf("%d of %d accounts failed to sync", failed, len(conf.Addresses))
	}
	return nil
}

func syncThroughDaemon(daemonAddress string, addresses []string) error {
	daemonClient, tearDown, err := client.Connect(daemonAddress)
	if err != nil {
		return err
	}
	defer tearDown()

	ctx, cancel := context.WithTimeout(context.Background(), daemonTimeout)
	defer cancel()
	response, err := daemonClient.Sync(ctx, &wire.SyncRequest{Addresses: addresses})
	if err != nil {
		return err
	}

	for _, address := range response.Synced {
		fmt.Printf("Synced %s\n", address)
	}
	for address, reason := range response.Failed {
		fmt.Printf("Failed %s: %s\n", address, reason)
	}
	if len(response.Failed) > 0 {
		return errors.Errorf("%d accounts failed to sync", len(response.Failed))
	}
	return nil
}
