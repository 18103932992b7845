package model

import "fmt"

// ValidationResult holds the outcome of each amount check. A check is
// TriBoolUnknown when the snapshots needed to decide it were missing.
type ValidationResult struct {
	IsAmountMoreThanBalance           TriBool `json:"isAmountMoreThanBalance"`
	IsBalanceInsufficientForPayingFee TriBool `json:"isBalanceInsufficientForPayingFee"`
	IsMinimumBalanceViolated          TriBool `json:"isMinimumBalanceViolated"`

	// SelectedAmount is the amount in base units, nil when it couldn't be resolved.
	SelectedAmount *uint64 `json:"selectedAmount,omitempty"`
}

// UnknownValidationResult returns a result where nothing could be decided.
func UnknownValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// IsFullyKnown returns true if every check was decided.
func (r *ValidationResult) IsFullyKnown() bool {
	return r.SelectedAmount != nil &&
		r.IsAmountMoreThanBalance.IsKnown() &&
		r.IsBalanceInsufficientForPayingFee.IsKnown() &&
		r.IsMinimumBalanceViolated.IsKnown()
}

func (r *ValidationResult) String() string {
	amount := "unknown"
	if r.SelectedAmount != nil {
		amount = fmt.Sprintf("%d", *r.SelectedAmount)
	}
	return fmt.Sprintf("amount: %s, moreThanBalance: %s, feeInsufficient: %s, minimumBalanceViolated: %s",
		amount, r.IsAmountMoreThanBalance, r.IsBalanceInsufficientForPayingFee, r.IsMinimumBalanceViolated)
}
