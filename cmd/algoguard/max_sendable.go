package main

import (
	"context"
	"fmt"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/client"
	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/amountvalidator"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
	"github.com/pkg/errors"
)

func maxSendable(conf *maxSendableConfig) error {
	assetID := model.AssetID(conf.AssetID)

	if conf.DaemonAddress != "" {
		daemonClient, tearDown, err := client.Connect(conf.DaemonAddress)
		if err != nil {
			return err
		}
		defer tearDown()

		ctx, cancel := context.WithTimeout(context.Background(), daemonTimeout)
		defer cancel()
		response, err := daemonClient.MaxSendable(ctx, &wire.MaxSendableRequest{Address: conf.Address, AssetID: assetID})
		if err != nil {
			return err
		}
		if !response.Known {
			return errors.Errorf("asset %d of account %s isn't known to the daemon", assetID, conf.Address)
		}
		fmt.Printf("Max sendable:\t%s\n", response.FormattedAmount)
		return nil
	}

	amount, decimals, err := maxSendableLocally(conf)
	if err != nil {
		return err
	}
	fmt.Printf("Max sendable:\t%s\n", amountconversion.FormatAmount(amount, decimals))
	return nil
}

// maxSendableLocally returns the largest amount of the asset the account in the local store
// can send, along with the asset's decimals.
func maxSendableLocally(conf *maxSendableConfig) (amount uint64, decimals uint32, err error) {
	assetID := model.AssetID(conf.AssetID)

	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return 0, 0, err
	}
	defer store.Close()

	set, err := store.LoadSet(context.Background(), conf.Address)
	if err != nil {
		return 0, 0, err
	}
	amount, ok := amountvalidator.New(conf.NetParams(), set, set).MaximumSendableAmount(conf.Address, assetID)
	if !ok {
		return 0, 0, errors.Errorf("asset %d of account %s isn't in the snapshot store, sync it first",
			assetID, conf.Address)
	}
	return amount, set.BaseOwnedAssetData(assetID, conf.Address).Decimals, nil
}
