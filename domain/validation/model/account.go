package model

// AppID identifies an application.
type AppID uint64

// StateSchema is the total key/value storage an account holds across its applications.
type StateSchema struct {
	NumUint      uint64 `json:"numUint"`
	NumByteSlice uint64 `json:"numByteSlice"`
}

// NumEntries returns the total number of key/value pairs in the schema.
func (s StateSchema) NumEntries() uint64 {
	return s.NumUint + s.NumByteSlice
}

// AccountSnapshot is a read-only copy of an account's state, taken before
// validation starts. Validation never mutates it.
type AccountSnapshot struct {
	Address     string             `json:"address"`
	AlgoBalance uint64             `json:"algoBalance"`
	Assets      map[AssetID]uint64 `json:"assets,omitempty"`
	OptedInApps []AppID            `json:"optedInApps,omitempty"`
	RekeyedTo   string             `json:"rekeyedTo,omitempty"`

	CreatedApps    uint64      `json:"createdApps,omitempty"`
	CreatedAssets  uint64      `json:"createdAssets,omitempty"`
	TotalAppSchema StateSchema `json:"totalAppSchema,omitempty"`
	ExtraAppPages  uint64      `json:"extraAppPages,omitempty"`
	TotalBoxes     uint64      `json:"totalBoxes,omitempty"`
	TotalBoxBytes  uint64      `json:"totalBoxBytes,omitempty"`

	// ReportedMinBalance is the minimum balance the node reported for the
	// account, or 0 if it wasn't reported.
	ReportedMinBalance uint64 `json:"reportedMinBalance,omitempty"`
}

// IsRekeyed returns true if signing authority was moved to another address.
func (a *AccountSnapshot) IsRekeyed() bool {
	return a.RekeyedTo != "" && a.RekeyedTo != a.Address
}

// OptedInAssetCount returns the number of assets the account is opted in to.
func (a *AccountSnapshot) OptedInAssetCount() uint64 {
	return uint64(len(a.Assets))
}

// OptedInAppCount returns the number of applications the account is opted in to.
func (a *AccountSnapshot) OptedInAppCount() uint64 {
	return uint64(len(a.OptedInApps))
}

// HoldsAssetsOrApps returns true if the account is opted in to at least one
// asset or application, in which case it can't be fully closed.
func (a *AccountSnapshot) HoldsAssetsOrApps() bool {
	return len(a.Assets) > 0 || len(a.OptedInApps) > 0 || a.CreatedApps > 0 || a.CreatedAssets > 0
}

// Holding returns the account's amount of the given asset, and false if the
// account isn't opted in to it.
func (a *AccountSnapshot) Holding(assetID AssetID) (uint64, bool) {
	if assetID.IsAlgo() {
		return a.AlgoBalance, true
	}
	amount, ok := a.Assets[assetID]
	return amount, ok
}

// Clone returns a deep copy of the snapshot.
func (a *AccountSnapshot) Clone() *AccountSnapshot {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Assets != nil {
		clone.Assets = make(map[AssetID]uint64, len(a.Assets))
		for assetID, amount := range a.Assets {
			clone.Assets[assetID] = amount
		}
	}
	if a.OptedInApps != nil {
		clone.OptedInApps = append([]AppID(nil), a.OptedInApps...)
	}
	return &clone
}
