package minimumbalance

import (
	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
	"github.com/algoguard/algoguard/domain/validation/utils/safemath"
	"github.com/pkg/errors"
)

// calculator computes the minimum balance of accounts under a fixed set of protocol params
type calculator struct {
	params *protocolparams.Params
}

// NewCalculator creates a new minimum balance calculator for the given protocol params
func NewCalculator(params *protocolparams.Params) model.MinimumBalanceCalculator {
	return &calculator{params: params}
}

// MinimumBalance returns the minimum ALGO balance, in microAlgos, the account must keep.
// It's always computed from the snapshot and saturates at the maximum uint64 value.
func (c *calculator) MinimumBalance(account *model.AccountSnapshot) uint64 {
	params := c.params

	minimumBalance := params.MinBalance
	assetsCost := safemath.MulSaturate(params.MinBalance, account.OptedInAssetCount())
	appOptInCost := safemath.MulSaturate(params.AppFlatOptInMinBalance, account.OptedInAppCount())
	appCreationCost := safemath.MulSaturate(params.AppFlatParamsMinBalance,
		safemath.AddSaturate(account.CreatedApps, account.ExtraAppPages))
	schemaCost := c.schemaMinimumBalance(account.TotalAppSchema)
	boxCost := safemath.AddSaturate(
		safemath.MulSaturate(params.BoxFlatMinBalance, account.TotalBoxes),
		safemath.MulSaturate(params.BoxByteMinBalance, account.TotalBoxBytes))

	for _, cost := range []uint64{assetsCost, appOptInCost, appCreationCost, schemaCost, boxCost} {
		minimumBalance = safemath.AddSaturate(minimumBalance, cost)
	}
	return minimumBalance
}

func (c *calculator) schemaMinimumBalance(schema model.StateSchema) uint64 {
	params := c.params
	entriesCost := safemath.MulSaturate(params.SchemaMinBalancePerEntry, safemath.AddSaturate(schema.NumUint, schema.NumByteSlice))
	uintCost := safemath.MulSaturate(params.SchemaUintMinBalance, schema.NumUint)
	bytesCost := safemath.MulSaturate(params.SchemaBytesMinBalance, schema.NumByteSlice)
	return safemath.AddSaturate(entriesCost, safemath.AddSaturate(uintCost, bytesCost))
}

// CheckReported returns ErrStaleMinimumBalance if the node reported a minimum balance
// for the account that differs from the computed one.
func (c *calculator) CheckReported(account *model.AccountSnapshot) error {
	if account.ReportedMinBalance == 0 {
		return nil
	}
	computed := c.MinimumBalance(account)
	if computed != account.ReportedMinBalance {
		return errors.Wrapf(ruleerrors.ErrStaleMinimumBalance,
			"computed minimum balance %d of account %s differs from the reported %d",
			computed, account.Address, account.ReportedMinBalance)
	}
	return nil
}
