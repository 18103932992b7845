package ruleerrors

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
)

func TestNewErrInvalidTransferRequest(t *testing.T) {
	outer := NewErrInvalidTransferRequest([]string{"Sender", "Amount"})
	expectedOuterErr := "ErrInvalidTransferRequest: invalid fields: Sender, Amount"

	inner := &ErrInvalidTransferRequest{}
	if !errors.As(outer, inner) {
		t.Fatal("TestNewErrInvalidTransferRequest: Outer should contain ErrInvalidTransferRequest in it")
	}
	if len(inner.InvalidFields) != 2 {
		t.Fatalf("TestNewErrInvalidTransferRequest: Expected 2 invalid fields, found: %d", len(inner.InvalidFields))
	}

	rule := &RuleError{}
	if !errors.As(outer, rule) {
		t.Fatal("TestNewErrInvalidTransferRequest: Outer should contain RuleError in it")
	}
	if rule.message != "ErrInvalidTransferRequest" {
		t.Fatalf("TestNewErrInvalidTransferRequest: Expected message = 'ErrInvalidTransferRequest', found: '%s'", rule.message)
	}

	if outer.Error() != expectedOuterErr {
		t.Fatalf("TestNewErrInvalidTransferRequest: Expected %s. found: %s", expectedOuterErr, outer.Error())
	}
}

func TestWrappedRuleErrorIsMatchable(t *testing.T) {
	err := pkgerrors.Wrapf(ErrMinimumBalanceViolation, "account %s would keep %d", "ADDR", 99)
	if !errors.Is(err, ErrMinimumBalanceViolation) {
		t.Fatalf("TestWrappedRuleErrorIsMatchable: expected errors.Is to match ErrMinimumBalanceViolation")
	}
	if errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("TestWrappedRuleErrorIsMatchable: did not expect a match with ErrInsufficientBalance")
	}
	rule := &RuleError{}
	if !errors.As(err, rule) || rule.message != "ErrMinimumBalanceViolation" {
		t.Fatalf("TestWrappedRuleErrorIsMatchable: expected a RuleError named ErrMinimumBalanceViolation, got %v", err)
	}
}
