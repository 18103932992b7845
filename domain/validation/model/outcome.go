package model

import (
	"fmt"

	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
)

// OutcomeKind tells the caller what to do with a transfer after validation.
type OutcomeKind uint8

// Outcome kinds, from the least to the most specific.
const (
	OutcomeOK OutcomeKind = iota
	OutcomeUnknown
	OutcomeInsufficientBalance
	OutcomeInsufficientFeeBalance
	OutcomeMustRetainMinimumBalance
	OutcomeRekeyedMaxSendBlocked
	OutcomeCloseToSameAccount
	OutcomeForcesAssetRemoval
)

var outcomeKindStrings = map[OutcomeKind]string{
	OutcomeOK:                       "OK",
	OutcomeUnknown:                  "Unknown",
	OutcomeInsufficientBalance:      "InsufficientBalance",
	OutcomeInsufficientFeeBalance:   "InsufficientFeeBalance",
	OutcomeMustRetainMinimumBalance: "MustRetainMinimumBalance",
	OutcomeRekeyedMaxSendBlocked:    "RekeyedMaxSendBlocked",
	OutcomeCloseToSameAccount:       "CloseToSameAccount",
	OutcomeForcesAssetRemoval:       "ForcesAssetRemoval",
}

var outcomeKindErrors = map[OutcomeKind]error{
	OutcomeUnknown:                  ruleerrors.ErrUnknownState,
	OutcomeInsufficientBalance:      ruleerrors.ErrInsufficientBalance,
	OutcomeInsufficientFeeBalance:   ruleerrors.ErrInsufficientFeeBalance,
	OutcomeMustRetainMinimumBalance: ruleerrors.ErrMinimumBalanceViolation,
	OutcomeRekeyedMaxSendBlocked:    ruleerrors.ErrRekeyedMaxSend,
	OutcomeCloseToSameAccount:       ruleerrors.ErrCloseToSameAccount,
	OutcomeForcesAssetRemoval:       ruleerrors.ErrForcesAssetRemoval,
}

// String returns the OutcomeKind as a human-readable name.
func (k OutcomeKind) String() string {
	if kindString, ok := outcomeKindStrings[k]; ok {
		return kindString
	}
	return fmt.Sprintf("Unknown OutcomeKind (%d)", uint8(k))
}

// Outcome is the single verdict on a transfer. Amount is set only for OutcomeOK.
type Outcome struct {
	Kind   OutcomeKind
	Amount uint64
}

// NewOKOutcome returns an OK outcome carrying the amount in base units.
func NewOKOutcome(amount uint64) Outcome {
	return Outcome{Kind: OutcomeOK, Amount: amount}
}

// NewOutcome returns a non-OK outcome of the given kind.
func NewOutcome(kind OutcomeKind) Outcome {
	return Outcome{Kind: kind}
}

// IsOK returns true if the transfer may proceed.
func (o Outcome) IsOK() bool {
	return o.Kind == OutcomeOK
}

// Err returns the rule error matching the outcome, or nil for OutcomeOK.
func (o Outcome) Err() error {
	if o.Kind == OutcomeOK {
		return nil
	}
	if err, ok := outcomeKindErrors[o.Kind]; ok {
		return err
	}
	return ruleerrors.ErrUnknownState
}

func (o Outcome) String() string {
	if o.Kind == OutcomeOK {
		return fmt.Sprintf("OK(%d)", o.Amount)
	}
	return o.Kind.String()
}

// Verdict is the outcome of validating a TransferRequest together with the
// individual check results it was resolved from.
//
// IsAccountCloseOut is set on an OK outcome that empties the sender's ALGO balance.
// Such a transfer must be sent as a close-out to the receiver, with the fee deducted
// from the amount, rather than as a plain payment.
type Verdict struct {
	Outcome           Outcome
	Result            *ValidationResult
	IsAccountCloseOut bool
}
