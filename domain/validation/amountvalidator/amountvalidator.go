package amountvalidator

import (
	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/algoguard/algoguard/domain/validation/closeoutdetector"
	"github.com/algoguard/algoguard/domain/validation/minimumbalance"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
	"github.com/algoguard/algoguard/domain/validation/utils/safemath"
	"github.com/shopspring/decimal"
)

// amountValidator exposes a set of validation methods for transfer amounts.
// It never mutates the snapshots it reads and holds no state of its own.
type amountValidator struct {
	params                   *protocolparams.Params
	accounts                 model.AccountSnapshotProvider
	ownedAssets              model.OwnedAssetDataProvider
	minimumBalanceCalculator model.MinimumBalanceCalculator
	closeOutDetector         model.CloseOutDetector
}

// New instantiates a new TransactionAmountValidator reading from the given providers
func New(params *protocolparams.Params,
	accounts model.AccountSnapshotProvider,
	ownedAssets model.OwnedAssetDataProvider) model.TransactionAmountValidator {

	return &amountValidator{
		params:                   params,
		accounts:                 accounts,
		ownedAssets:              ownedAssets,
		minimumBalanceCalculator: minimumbalance.NewCalculator(params),
		closeOutDetector:         closeoutdetector.New(),
	}
}

// ValidateAssetAmount converts amount to base units and checks it against the sender's
// holding and minimum balance. Checks that can't be decided are left unknown.
func (v *amountValidator) ValidateAssetAmount(amount decimal.Decimal, sender string,
	assetID model.AssetID) (*model.ValidationResult, error) {

	ownedAsset := v.ownedAssets.BaseOwnedAssetData(assetID, sender)
	if ownedAsset == nil {
		log.Debugf("No holding of asset %d by %s is known", assetID, sender)
		return model.UnknownValidationResult(), nil
	}

	baseAmount, err := amountconversion.ToBaseUnits(amount, ownedAsset.Decimals)
	if err != nil {
		return nil, err
	}

	result := &model.ValidationResult{
		SelectedAmount:          &baseAmount,
		IsAmountMoreThanBalance: model.TriBoolFrom(baseAmount > ownedAsset.Amount),
	}

	account := v.accounts.CachedAccountDetail(sender)
	if account == nil {
		log.Debugf("No snapshot of account %s is known", sender)
		if !ownedAsset.IsAlgo {
			result.IsMinimumBalanceViolated = model.TriBoolFalse
		}
		return result, nil
	}

	err = v.minimumBalanceCalculator.CheckReported(account)
	if err != nil {
		log.Warnf("%s", err)
	}

	minimumBalance := v.minimumBalanceCalculator.MinimumBalance(account)
	result.IsBalanceInsufficientForPayingFee = model.TriBoolFrom(
		account.AlgoBalance < safemath.AddSaturate(minimumBalance, v.params.MinTxnFee))
	result.IsMinimumBalanceViolated = model.TriBoolFrom(
		v.isMinimumBalanceViolated(account, ownedAsset, baseAmount, minimumBalance))

	log.Tracef("Validated %d of asset %d from %s: %s", baseAmount, assetID, sender, result)
	return result, nil
}

func (v *amountValidator) isMinimumBalanceViolated(account *model.AccountSnapshot,
	ownedAsset *model.OwnedAssetData, amount uint64, minimumBalance uint64) bool {

	if !ownedAsset.IsAlgo {
		return false
	}

	// Sending everything from an account that holds nothing else closes it,
	// so there's no minimum balance left to keep.
	if amount == ownedAsset.Amount && !account.HoldsAssetsOrApps() {
		return false
	}

	required := safemath.AddSaturate(safemath.AddSaturate(amount, v.params.MinTxnFee), minimumBalance)
	return ownedAsset.Amount < required
}

// MaximumSendableAmount returns how much of the asset the account can send, and false
// if that can't be determined. For ALGO the minimum balance and fee are kept back, and
// the result is clamped at zero.
func (v *amountValidator) MaximumSendableAmount(address string, assetID model.AssetID) (uint64, bool) {
	ownedAsset := v.ownedAssets.BaseOwnedAssetData(assetID, address)
	if ownedAsset == nil {
		return 0, false
	}
	if !ownedAsset.IsAlgo {
		return ownedAsset.Amount, true
	}

	account := v.accounts.CachedAccountDetail(address)
	if account == nil {
		return 0, false
	}
	reserved := safemath.AddSaturate(v.minimumBalanceCalculator.MinimumBalance(account), v.params.MinTxnFee)
	if ownedAsset.Amount < reserved {
		log.Debugf("Account %s holds %d, below the %d it must keep", address, ownedAsset.Amount, reserved)
	}
	return safemath.SubFloor(ownedAsset.Amount, reserved), true
}

// IsAmountBiggerThanBalance compares an amount already in base units with the account's holding.
func (v *amountValidator) IsAmountBiggerThanBalance(address string, assetID model.AssetID,
	amount uint64) model.TriBool {

	ownedAsset := v.ownedAssets.BaseOwnedAssetData(assetID, address)
	if ownedAsset == nil {
		return model.TriBoolUnknown
	}
	return model.TriBoolFrom(amount > ownedAsset.Amount)
}
