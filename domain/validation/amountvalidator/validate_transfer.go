package amountvalidator

import (
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/transferrequest"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
)

// ValidateTransfer validates a transfer request as entered by the user and resolves
// it to a single outcome. Malformed requests are returned as errors.
func (v *amountValidator) ValidateTransfer(request *model.TransferRequest) (*model.Verdict, error) {
	err := transferrequest.Validate(request)
	if err != nil {
		return nil, err
	}

	amount, err := amountconversion.ParseAmount(request.Amount)
	if err != nil {
		return nil, err
	}

	result, err := v.ValidateAssetAmount(amount, request.Sender, request.AssetID)
	if err != nil {
		return nil, err
	}

	account := v.accounts.CachedAccountDetail(request.Sender)
	outcome := v.resolveOutcome(account, request, result)
	log.Debugf("Transfer of %s of asset %d from %s resolved to %s",
		request.Amount, request.AssetID, request.Sender, outcome)

	isAccountCloseOut := outcome.IsOK() &&
		v.closeOutDetector.IsAccountCloseOut(account, request.AssetID, outcome.Amount)

	return &model.Verdict{
		Outcome:           outcome,
		Result:            result,
		IsAccountCloseOut: isAccountCloseOut,
	}, nil
}

// resolveOutcome picks the first failing check, from the most to the least fundamental.
func (v *amountValidator) resolveOutcome(account *model.AccountSnapshot, request *model.TransferRequest,
	result *model.ValidationResult) model.Outcome {

	if account == nil || !result.IsFullyKnown() {
		return model.NewOutcome(model.OutcomeUnknown)
	}
	amount := *result.SelectedAmount

	switch {
	case result.IsAmountMoreThanBalance.IsTrue():
		return model.NewOutcome(model.OutcomeInsufficientBalance)
	case result.IsBalanceInsufficientForPayingFee.IsTrue():
		return model.NewOutcome(model.OutcomeInsufficientFeeBalance)
	case v.closeOutDetector.IsMaxTransactionFromRekeyedAccount(account, request.AssetID, amount):
		return model.NewOutcome(model.OutcomeRekeyedMaxSendBlocked)
	case result.IsMinimumBalanceViolated.IsTrue():
		return model.NewOutcome(model.OutcomeMustRetainMinimumBalance)
	case v.closeOutDetector.IsCloseToSameAccount(account, request.Receiver, request.AssetID, amount):
		return model.NewOutcome(model.OutcomeCloseToSameAccount)
	case v.closeOutDetector.IsAssetCloseOut(account, request.AssetID, amount):
		return model.NewOutcome(model.OutcomeForcesAssetRemoval)
	}
	return model.NewOKOutcome(amount)
}
