package snapshot

import (
	"context"

	"github.com/algoguard/algoguard/domain/validation/model"
)

// Store persists account snapshots and asset metadata between runs.
type Store interface {
	// SaveAccount stores the account together with the metadata of the assets it holds.
	SaveAccount(ctx context.Context, account *model.AccountSnapshot, assets []*model.AssetMetadata) error

	// LoadSet loads the given accounts and the metadata of every asset they hold.
	// Accounts that aren't stored are left out of the set.
	LoadSet(ctx context.Context, addresses ...string) (*Set, error)

	Close() error
}

// HeldAssetIDs returns the ids of the non-ALGO assets held by the accounts, without duplicates.
func HeldAssetIDs(accounts []*model.AccountSnapshot) []model.AssetID {
	seen := make(map[model.AssetID]struct{})
	var assetIDs []model.AssetID
	for _, account := range accounts {
		for assetID := range account.Assets {
			if _, ok := seen[assetID]; ok {
				continue
			}
			seen[assetID] = struct{}{}
			assetIDs = append(assetIDs, assetID)
		}
	}
	return assetIDs
}
