package amountconversion

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var decimalAmountPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// strictAmountPattern matches an integer, or a decimal with at least one digit on each side,
// without zero padding on the integer part.
var strictAmountPattern = regexp.MustCompile(`^([1-9]\d{0,19}|0)(\.(\d+))?$`)

// ToBaseUnits converts a user-entered amount into base units of an asset with the given
// number of decimals. Digits beyond the asset's precision are truncated.
func ToBaseUnits(amount decimal.Decimal, decimals uint32) (uint64, error) {
	if amount.IsNegative() {
		return 0, errors.Wrapf(ruleerrors.ErrNegativeAmount, "amount %s is negative", amount)
	}

	shifted := amount.Shift(int32(decimals)).Truncate(0).BigInt()
	if !shifted.IsUint64() {
		return 0, errors.Wrapf(ruleerrors.ErrAmountOverflow,
			"amount %s with %d decimals doesn't fit in 64 bits", amount, decimals)
	}
	return shifted.Uint64(), nil
}

// FromBaseUnits converts base units of an asset back to its decimal representation.
func FromBaseUnits(amount uint64, decimals uint32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(amount), -int32(decimals))
}

// FormatAmount renders base units with exactly the asset's number of decimals.
func FormatAmount(amount uint64, decimals uint32) string {
	return FromBaseUnits(amount, decimals).StringFixed(int32(decimals))
}

// FormatAmountWithUnit renders base units followed by the asset's unit name, if it has one.
func FormatAmountWithUnit(amount uint64, decimals uint32, unitName string) string {
	if unitName == "" {
		return FormatAmount(amount, decimals)
	}
	return fmt.Sprintf("%s %s", FormatAmount(amount, decimals), unitName)
}

// ParseAmount parses a plain base-10 decimal string. Signs are kept so that
// negative amounts are reported by ToBaseUnits rather than as malformed input.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if !decimalAmountPattern.MatchString(amount) {
		return decimal.Decimal{}, errors.Wrapf(ruleerrors.ErrMalformedAmount, "%q is not a decimal amount", amount)
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(ruleerrors.ErrMalformedAmount, "%q: %s", amount, err)
	}
	return parsed, nil
}

// ValidateAmountFormat checks that amount is an unpadded, non-negative integer or decimal
// with at most the given number of fractional digits.
func ValidateAmountFormat(amount string, decimals uint32) error {
	match := strictAmountPattern.FindStringSubmatch(amount)
	if match == nil {
		return errors.Wrapf(ruleerrors.ErrMalformedAmount, "invalid send amount %q", amount)
	}
	if len(match[3]) > int(decimals) {
		return errors.Wrapf(ruleerrors.ErrTooManyDecimals,
			"%q has %d decimal digits, at most %d are allowed", amount, len(match[3]), decimals)
	}
	return nil
}
