package algod

type transactionParamsResponse struct {
	ConsensusVersion string `json:"consensus-version"`
	Fee              uint64 `json:"fee"`
	GenesisID        string `json:"genesis-id"`
	LastRound        uint64 `json:"last-round"`
	MinFee           uint64 `json:"min-fee"`
}

type assetHoldingResponse struct {
	Amount  uint64 `json:"amount"`
	AssetID uint64 `json:"asset-id"`
}

type appLocalStateResponse struct {
	ID uint64 `json:"id"`
}

type stateSchemaResponse struct {
	NumUint      uint64 `json:"num-uint"`
	NumByteSlice uint64 `json:"num-byte-slice"`
}

type accountResponse struct {
	Address             string                  `json:"address"`
	Amount              uint64                  `json:"amount"`
	MinBalance          uint64                  `json:"min-balance"`
	AuthAddr            string                  `json:"auth-addr"`
	Assets              []assetHoldingResponse  `json:"assets"`
	AppsLocalState      []appLocalStateResponse `json:"apps-local-state"`
	AppsTotalSchema     stateSchemaResponse     `json:"apps-total-schema"`
	AppsTotalExtraPages uint64                  `json:"apps-total-extra-pages"`
	TotalCreatedApps    uint64                  `json:"total-created-apps"`
	TotalCreatedAssets  uint64                  `json:"total-created-assets"`
	TotalBoxes          uint64                  `json:"total-boxes"`
	TotalBoxBytes       uint64                  `json:"total-box-bytes"`
}

type assetParamsResponse struct {
	Decimals uint32 `json:"decimals"`
	Name     string `json:"name"`
	UnitName string `json:"unit-name"`
	Total    uint64 `json:"total"`
}

type assetResponse struct {
	Index  uint64              `json:"index"`
	Params assetParamsResponse `json:"params"`
}

type errorResponse struct {
	Message string `json:"message"`
}
