package protocolparams

// Params defines the protocol constants that govern how much an Algorand
// account must keep and pay. All amounts are in microAlgos.
type Params struct {
	// Name is the human-readable name of the network.
	Name string

	// GenesisID identifies the network. A node reporting a different
	// genesis id belongs to another network.
	GenesisID string

	// ConsensusVersion is the consensus protocol the constants were taken from.
	// Empty until it's learned from a node.
	ConsensusVersion string

	// MinBalance is the minimum balance of a bare account, and the additional
	// minimum balance required for each asset opt-in.
	MinBalance uint64

	// MinTxnFee is the minimum fee of a single transaction.
	MinTxnFee uint64

	// AppFlatParamsMinBalance is required per created application and per extra program page.
	AppFlatParamsMinBalance uint64

	// AppFlatOptInMinBalance is required per application opt-in.
	AppFlatOptInMinBalance uint64

	// SchemaMinBalancePerEntry is required per key/value entry of application state.
	SchemaMinBalancePerEntry uint64

	// SchemaUintMinBalance is required on top of SchemaMinBalancePerEntry per uint entry.
	SchemaUintMinBalance uint64

	// SchemaBytesMinBalance is required on top of SchemaMinBalancePerEntry per byte-slice entry.
	SchemaBytesMinBalance uint64

	// BoxFlatMinBalance is required per box created by an application account.
	BoxFlatMinBalance uint64

	// BoxByteMinBalance is required per byte of box name and content.
	BoxByteMinBalance uint64
}

// Clone returns a copy of the params that can be modified freely.
func (p *Params) Clone() *Params {
	clone := *p
	return &clone
}

// algorandConstants are the minimum balance constants shared by every public
// Algorand network at the time of writing.
var algorandConstants = Params{
	MinBalance:               100_000,
	MinTxnFee:                1_000,
	AppFlatParamsMinBalance:  100_000,
	AppFlatOptInMinBalance:   100_000,
	SchemaMinBalancePerEntry: 25_000,
	SchemaUintMinBalance:     3_500,
	SchemaBytesMinBalance:    25_000,
	BoxFlatMinBalance:        2_500,
	BoxByteMinBalance:        400,
}

func withNetwork(name, genesisID string) Params {
	params := algorandConstants
	params.Name = name
	params.GenesisID = genesisID
	return params
}

// MainnetParams defines the protocol params of the main network.
var MainnetParams = withNetwork("mainnet", "mainnet-v1.0")

// TestnetParams defines the protocol params of the public test network.
var TestnetParams = withNetwork("testnet", "testnet-v1.0")

// BetanetParams defines the protocol params of the beta network, where new
// consensus versions land first.
var BetanetParams = withNetwork("betanet", "betanet-v1.0")
