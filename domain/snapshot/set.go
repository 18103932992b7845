package snapshot

import (
	"sort"

	"github.com/algoguard/algoguard/domain/validation/model"
)

// Set is an immutable collection of account snapshots and asset metadata.
// It is built once before validation and is safe for concurrent use.
type Set struct {
	accounts map[string]*model.AccountSnapshot
	assets   map[model.AssetID]*model.AssetMetadata
}

// New builds a Set from copies of the given accounts and assets. Later
// entries replace earlier ones with the same key.
func New(accounts []*model.AccountSnapshot, assets []*model.AssetMetadata) *Set {
	set := &Set{
		accounts: make(map[string]*model.AccountSnapshot, len(accounts)),
		assets:   make(map[model.AssetID]*model.AssetMetadata, len(assets)),
	}
	for _, account := range accounts {
		set.accounts[account.Address] = account.Clone()
	}
	for _, asset := range assets {
		assetCopy := *asset
		set.assets[asset.AssetID] = &assetCopy
	}
	return set
}

// CachedAccountDetail returns a copy of the account's snapshot, or nil if it isn't in the set.
func (s *Set) CachedAccountDetail(address string) *model.AccountSnapshot {
	return s.accounts[address].Clone()
}

// CachedAssetDetail returns the metadata of a fungible asset, or nil if it isn't in the set.
// ALGO is always known.
func (s *Set) CachedAssetDetail(assetID model.AssetID) *model.AssetMetadata {
	if assetID.IsAlgo() {
		return model.AlgoMetadata()
	}
	asset, ok := s.assets[assetID]
	if !ok || asset.IsCollectible {
		return nil
	}
	assetCopy := *asset
	return &assetCopy
}

// CachedCollectibleByID returns the metadata of a collectible, or nil if it isn't in the set.
func (s *Set) CachedCollectibleByID(assetID model.AssetID) *model.AssetMetadata {
	asset, ok := s.assets[assetID]
	if !ok || !asset.IsCollectible {
		return nil
	}
	assetCopy := *asset
	return &assetCopy
}

// BaseOwnedAssetData returns the account's holding of the asset together with the asset's
// decimals. It returns nil if the account, the holding or the asset metadata is missing.
func (s *Set) BaseOwnedAssetData(assetID model.AssetID, address string) *model.OwnedAssetData {
	account, ok := s.accounts[address]
	if !ok {
		return nil
	}
	amount, ok := account.Holding(assetID)
	if !ok {
		return nil
	}

	metadata := s.CachedAssetDetail(assetID)
	if metadata == nil {
		metadata = s.CachedCollectibleByID(assetID)
	}
	if metadata == nil {
		return nil
	}

	return &model.OwnedAssetData{
		AssetID:  assetID,
		Amount:   amount,
		Decimals: metadata.Decimals,
		IsAlgo:   assetID.IsAlgo(),
	}
}

// Accounts returns copies of all account snapshots, sorted by address.
func (s *Set) Accounts() []*model.AccountSnapshot {
	accounts := make([]*model.AccountSnapshot, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account.Clone())
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Address < accounts[j].Address })
	return accounts
}

// Assets returns copies of all asset metadata, sorted by asset id.
func (s *Set) Assets() []*model.AssetMetadata {
	assets := make([]*model.AssetMetadata, 0, len(s.assets))
	for _, asset := range s.assets {
		assetCopy := *asset
		assets = append(assets, &assetCopy)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].AssetID < assets[j].AssetID })
	return assets
}

// With returns a new Set with the given account and assets added or replaced.
// The receiver is left unchanged.
func (s *Set) With(account *model.AccountSnapshot, assets ...*model.AssetMetadata) *Set {
	accounts := make([]*model.AccountSnapshot, 0, len(s.accounts)+1)
	for _, existing := range s.accounts {
		accounts = append(accounts, existing)
	}
	if account != nil {
		accounts = append(accounts, account)
	}
	allAssets := make([]*model.AssetMetadata, 0, len(s.assets)+len(assets))
	for _, existing := range s.assets {
		allAssets = append(allAssets, existing)
	}
	allAssets = append(allAssets, assets...)
	return New(accounts, allAssets)
}
