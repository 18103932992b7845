package config

import (
	"fmt"
	"os"

	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

// NetworkFlags holds the network configuration, that is which network is selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the public test network"`
	Betanet            bool   `long:"betanet" description:"Use the beta network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides protocol params with the ones in the given JSON file"`

	ActiveNetParams *protocolparams.Params
}

// ResolveNetwork parses the network command line argument and sets ActiveNetParams accordingly.
// It returns error if more than one network was selected, nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// Default network is mainnet. The presets are cloned so overrides never leak between commands.
	networkFlags.ActiveNetParams = protocolparams.MainnetParams.Clone()

	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = protocolparams.TestnetParams.Clone()
	}
	if networkFlags.Betanet {
		numNets++
		networkFlags.ActiveNetParams = protocolparams.BetanetParams.Clone()
	}
	if numNets > 1 {
		message := "Multiple networks parameters (testnet, betanet) cannot be used " +
			"together. Please choose only one network"
		err := errors.New(message)
		if parser != nil {
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
		}
		return err
	}

	return networkFlags.overrideParams()
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *protocolparams.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	params, err := protocolparams.LoadOverrideFile(networkFlags.ActiveNetParams, networkFlags.OverrideParamsFile)
	if err != nil {
		return err
	}
	networkFlags.ActiveNetParams = params
	return nil
}
