package closeoutdetector

import (
	"github.com/algoguard/algoguard/domain/validation/model"
)

// detector recognizes transfers that empty an account's ALGO balance or an asset holding
type detector struct{}

// New instantiates a new CloseOutDetector
func New() model.CloseOutDetector {
	return &detector{}
}

// IsMaxTransactionFromRekeyedAccount returns true if a rekeyed account is sending its
// whole ALGO balance. The account's signing authority lives elsewhere, so it may not
// zero out its own balance with a max-send.
func (d *detector) IsMaxTransactionFromRekeyedAccount(account *model.AccountSnapshot,
	assetID model.AssetID, amount uint64) bool {

	if account == nil || !assetID.IsAlgo() {
		return false
	}
	return account.IsRekeyed() && amount == account.AlgoBalance
}

// IsCloseToSameAccount returns true if the account sends its whole ALGO balance to itself
// while holding nothing else, which would close the account into itself.
func (d *detector) IsCloseToSameAccount(account *model.AccountSnapshot, receiver string,
	assetID model.AssetID, amount uint64) bool {

	if account == nil || !assetID.IsAlgo() || receiver == "" {
		return false
	}
	return receiver == account.Address &&
		amount == account.AlgoBalance &&
		!account.HoldsAssetsOrApps()
}

// IsAccountCloseOut returns true if the account sends its whole, non-zero ALGO balance while
// holding nothing else. The transfer then has to close the account out with the fee taken
// from the balance, since a plain payment of that amount can't also pay the fee.
func (d *detector) IsAccountCloseOut(account *model.AccountSnapshot, assetID model.AssetID, amount uint64) bool {
	if account == nil || !assetID.IsAlgo() {
		return false
	}
	return account.AlgoBalance > 0 &&
		amount == account.AlgoBalance &&
		!account.HoldsAssetsOrApps()
}

// IsAssetCloseOut returns true if the account sends its whole, non-zero holding of an asset.
// Such a transfer closes the holding and opts the account out of the asset.
func (d *detector) IsAssetCloseOut(account *model.AccountSnapshot, assetID model.AssetID, amount uint64) bool {
	if account == nil || assetID.IsAlgo() {
		return false
	}
	holding, ok := account.Assets[assetID]
	return ok && holding > 0 && amount == holding
}
