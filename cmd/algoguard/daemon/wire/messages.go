package wire

import (
	"github.com/algoguard/algoguard/domain/validation/model"
)

// ValidateRequest asks the daemon to validate a transfer.
type ValidateRequest struct {
	Transfer model.TransferRequest `json:"transfer"`
}

// ValidateResponse carries the verdict on a transfer. Error is the message of the
// rule error matching the outcome, empty when the outcome is OK. AccountCloseOut
// means the transfer must close the sender's account out instead of paying Amount.
type ValidateResponse struct {
	Outcome         string                  `json:"outcome"`
	Amount          uint64                  `json:"amount,omitempty"`
	FormattedAmount string                  `json:"formattedAmount,omitempty"`
	AccountCloseOut bool                    `json:"accountCloseOut,omitempty"`
	Error           string                  `json:"error,omitempty"`
	Result          *model.ValidationResult `json:"result"`
}

// MaxSendableRequest asks how much of an asset an account can send.
type MaxSendableRequest struct {
	Address string        `json:"address"`
	AssetID model.AssetID `json:"assetId"`
}

// MaxSendableResponse is the answer to a MaxSendableRequest. Known is false when
// the account or asset isn't in the daemon's store.
type MaxSendableResponse struct {
	Known           bool   `json:"known"`
	Amount          uint64 `json:"amount"`
	FormattedAmount string `json:"formattedAmount,omitempty"`
}

// SyncRequest asks the daemon to refresh accounts from algod.
type SyncRequest struct {
	Addresses []string `json:"addresses"`
}

// SyncResponse lists the accounts that were refreshed, and why the others weren't.
type SyncResponse struct {
	Synced []string          `json:"synced"`
	Failed map[string]string `json:"failed,omitempty"`
}
