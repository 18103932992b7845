package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/transferrequest"
	"github.com/pkg/errors"
)

// snapshotFile is the format read by the import command.
type snapshotFile struct {
	Accounts []*model.AccountSnapshot `json:"accounts"`
	Assets   []*model.AssetMetadata   `json:"assets"`
}

func readSnapshotFile(path string) (*snapshotFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	content := &snapshotFile{}
	err = decoder.Decode(content)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't parse snapshot file %s", path)
	}

	for _, account := range content.Accounts {
		if account == nil {
			return nil, errors.Errorf("snapshot file %s has an empty account entry", path)
		}
		if !transferrequest.IsValidAddress(account.Address) {
			return nil, errors.Errorf("snapshot file %s has an account with the invalid address %q",
				path, account.Address)
		}
	}
	for _, asset := range content.Assets {
		if asset == nil {
			return nil, errors.Errorf("snapshot file %s has an empty asset entry", path)
		}
	}
	return content, nil
}

// assetsOf picks the metadata of the assets the account holds out of all the imported assets.
func assetsOf(account *model.AccountSnapshot, assets map[model.AssetID]*model.AssetMetadata) []*model.AssetMetadata {
	var held []*model.AssetMetadata
	for _, assetID := range snapshot.HeldAssetIDs([]*model.AccountSnapshot{account}) {
		if asset, ok := assets[assetID]; ok {
			held = append(held, asset)
		}
	}
	return held
}

func importSnapshots(conf *importConfig) error {
	content, err := readSnapshotFile(conf.File)
	if err != nil {
		return err
	}

	store, err := openStore(&conf.StoreFlags, conf.NetParams())
	if err != nil {
		return err
	}
	defer store.Close()

	assets := make(map[model.AssetID]*model.AssetMetadata, len(content.Assets))
	for _, asset := range content.Assets {
		assets[asset.AssetID] = asset
	}

	ctx := context.Background()
	for _, account := range content.Accounts {
		held := assetsOf(account, assets)
		if len(held) < len(account.Assets) {
			log.Warnf("Account %s holds %d assets, only %d of which have metadata in %s",
				account.Address, len(account.Assets), len(held), conf.File)
		}
		err := store.SaveAccount(ctx, account, held)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Imported %d accounts and %d assets\n", len(content.Accounts), len(content.Assets))
	return nil
}
