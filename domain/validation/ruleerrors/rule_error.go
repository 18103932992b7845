package ruleerrors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// These constants are used to identify a specific RuleError.
var (
	// ErrNegativeAmount indicates the user-entered amount is below zero.
	ErrNegativeAmount = newRuleError("ErrNegativeAmount")

	// ErrAmountOverflow indicates the amount, once converted to base units,
	// doesn't fit in a uint64.
	ErrAmountOverflow = newRuleError("ErrAmountOverflow")

	// ErrMalformedAmount indicates the amount string isn't a plain base-10 decimal.
	ErrMalformedAmount = newRuleError("ErrMalformedAmount")

	// ErrTooManyDecimals indicates the amount has more fractional digits
	// than the asset supports.
	ErrTooManyDecimals = newRuleError("ErrTooManyDecimals")

	// ErrUnknownState indicates the account or asset snapshot needed to
	// decide was not available.
	ErrUnknownState = newRuleError("ErrUnknownState")

	// ErrInsufficientBalance indicates the amount is larger than the sender's holding.
	ErrInsufficientBalance = newRuleError("ErrInsufficientBalance")

	// ErrInsufficientFeeBalance indicates the sender's ALGO balance can't cover the
	// minimum balance plus the network fee.
	ErrInsufficientFeeBalance = newRuleError("ErrInsufficientFeeBalance")

	// ErrMinimumBalanceViolation indicates an ALGO send that would leave the
	// account below its minimum balance.
	ErrMinimumBalanceViolation = newRuleError("ErrMinimumBalanceViolation")

	// ErrRekeyedMaxSend indicates a rekeyed account tried to send its whole ALGO balance.
	ErrRekeyedMaxSend = newRuleError("ErrRekeyedMaxSend")

	// ErrCloseToSameAccount indicates a full-balance close-out to the sender itself.
	ErrCloseToSameAccount = newRuleError("ErrCloseToSameAccount")

	// ErrForcesAssetRemoval indicates sending the full holding of an asset,
	// which opts the sender out of it.
	ErrForcesAssetRemoval = newRuleError("ErrForcesAssetRemoval")

	// ErrStaleMinimumBalance indicates the computed minimum balance doesn't match
	// the one reported by the node, meaning the protocol parameters are out of date.
	ErrStaleMinimumBalance = newRuleError("ErrStaleMinimumBalance")
)

// RuleError identifies a rule violation. It is used to indicate that
// validation of a transfer failed due to one of the wallet's rules.
// The caller can use errors.As to determine if a failure was
// specifically due to a rule violation.
type RuleError struct {
	message string
	inner   error
}

// Error satisfies the error interface and prints human-readable errors.
func (e RuleError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap satisfies the errors.Unwrap interface
func (e RuleError) Unwrap() error {
	return e.inner
}

// Cause satisfies the github.com/pkg/errors.Cause interface
func (e RuleError) Cause() error {
	return e.inner
}

func newRuleError(message string) RuleError {
	return RuleError{message: message, inner: nil}
}

// ErrInvalidTransferRequest lists the request fields that failed validation.
type ErrInvalidTransferRequest struct {
	InvalidFields []string
}

func (e ErrInvalidTransferRequest) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.InvalidFields, ", "))
}

// NewErrInvalidTransferRequest creates a new ErrInvalidTransferRequest error wrapped in a RuleError
func NewErrInvalidTransferRequest(invalidFields []string) error {
	return errors.WithStack(RuleError{
		message: "ErrInvalidTransferRequest",
		inner:   ErrInvalidTransferRequest{invalidFields},
	})
}
