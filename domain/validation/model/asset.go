package model

// AssetID identifies an Algorand Standard Asset. AlgoAssetID is the sentinel
// used for the network's own currency.
type AssetID uint64

// AlgoAssetID is the asset id under which ALGO holdings are looked up.
const AlgoAssetID AssetID = 0

// AlgoDecimals is the number of fractional digits of ALGO (1 ALGO = 10^6 microAlgos).
const AlgoDecimals = 6

// MaxAssetDecimals is the largest number of decimals an asset may declare.
const MaxAssetDecimals = 19

// IsAlgo returns true if the id refers to ALGO.
func (id AssetID) IsAlgo() bool {
	return id == AlgoAssetID
}

// VerificationTier is the trust level the wallet assigns to an asset.
type VerificationTier string

// Verification tiers
const (
	VerificationUnverified VerificationTier = "unverified"
	VerificationVerified   VerificationTier = "verified"
	VerificationTrusted    VerificationTier = "trusted"
	VerificationSuspicious VerificationTier = "suspicious"
)

// AssetMetadata is the cached, network-wide description of an asset.
type AssetMetadata struct {
	AssetID       AssetID          `json:"assetId"`
	Decimals      uint32           `json:"decimals"`
	UnitName      string           `json:"unitName,omitempty"`
	Name          string           `json:"name,omitempty"`
	Verification  VerificationTier `json:"verification,omitempty"`
	IsCollectible bool             `json:"isCollectible,omitempty"`
}

// OwnedAssetData is the holding of one asset by one account, together with
// what's needed to interpret its amount.
type OwnedAssetData struct {
	AssetID  AssetID
	Amount   uint64
	Decimals uint32
	IsAlgo   bool
}

// AlgoMetadata describes ALGO itself.
func AlgoMetadata() *AssetMetadata {
	return &AssetMetadata{
		AssetID:      AlgoAssetID,
		Decimals:     AlgoDecimals,
		UnitName:     "ALGO",
		Name:         "Algo",
		Verification: VerificationTrusted,
	}
}
