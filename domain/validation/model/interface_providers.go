package model

// AccountSnapshotProvider looks up cached account snapshots. It returns nil
// when the account isn't known.
type AccountSnapshotProvider interface {
	CachedAccountDetail(address string) *AccountSnapshot
}

// AssetMetadataProvider looks up cached asset metadata. Both methods return
// nil when the asset isn't known.
type AssetMetadataProvider interface {
	CachedAssetDetail(assetID AssetID) *AssetMetadata
	CachedCollectibleByID(assetID AssetID) *AssetMetadata
}

// OwnedAssetDataProvider resolves the holding of one asset by one account.
// It returns nil unless both the holding and the asset's decimals are known.
type OwnedAssetDataProvider interface {
	BaseOwnedAssetData(assetID AssetID, address string) *OwnedAssetData
}

// SnapshotProvider is everything validation reads.
type SnapshotProvider interface {
	AccountSnapshotProvider
	AssetMetadataProvider
	OwnedAssetDataProvider
}
