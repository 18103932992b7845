package model

// TransferRequest is a transfer as entered by the user, before any conversion.
type TransferRequest struct {
	Sender   string  `json:"sender" validate:"required,algoaddr"`
	AssetID  AssetID `json:"assetId"`
	Amount   string  `json:"amount" validate:"required,decimalamount"`
	Receiver string  `json:"receiver,omitempty" validate:"omitempty,algoaddr"`
}
