package model

import "github.com/shopspring/decimal"

// TransactionAmountValidator checks a proposed transfer amount against the
// sender's snapshots.
type TransactionAmountValidator interface {
	ValidateAssetAmount(amount decimal.Decimal, sender string, assetID AssetID) (*ValidationResult, error)
	MaximumSendableAmount(address string, assetID AssetID) (uint64, bool)
	IsAmountBiggerThanBalance(address string, assetID AssetID, amount uint64) TriBool
	ValidateTransfer(request *TransferRequest) (*Verdict, error)
}

// MinimumBalanceCalculator computes the minimum ALGO balance an account must keep.
type MinimumBalanceCalculator interface {
	MinimumBalance(account *AccountSnapshot) uint64
	CheckReported(account *AccountSnapshot) error
}

// CloseOutDetector recognizes transfers that would close out an account or an asset holding.
type CloseOutDetector interface {
	IsMaxTransactionFromRekeyedAccount(account *AccountSnapshot, assetID AssetID, amount uint64) bool
	IsCloseToSameAccount(account *AccountSnapshot, receiver string, assetID AssetID, amount uint64) bool
	IsAccountCloseOut(account *AccountSnapshot, assetID AssetID, amount uint64) bool
	IsAssetCloseOut(account *AccountSnapshot, assetID AssetID, amount uint64) bool
}
