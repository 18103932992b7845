package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		name         string
		flags        NetworkFlags
		expectedName string
		expectErr    bool
	}{
		{"default", NetworkFlags{}, "mainnet", false},
		{"testnet", NetworkFlags{Testnet: true}, "testnet", false},
		{"betanet", NetworkFlags{Betanet: true}, "betanet", false},
		{"both", NetworkFlags{Testnet: true, Betanet: true}, "", true},
	}
	for _, test := range tests {
		flags := test.flags
		err := flags.ResolveNetwork(nil)
		if test.expectErr {
			if err == nil || !strings.HasPrefix(err.Error(), "Multiple networks parameters (testnet, betanet) cannot") {
				t.Fatalf("TestResolveNetwork: %s: expected the multiple networks error, got %v", test.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("TestResolveNetwork: %s: unexpected error: %s", test.name, err)
		}
		if flags.NetParams().Name != test.expectedName {
			t.Fatalf("TestResolveNetwork: %s: expected %s, got %s", test.name, test.expectedName, flags.NetParams().Name)
		}
	}
}

func TestResolveNetworkWithOverrideFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "algoguard")
	if err != nil {
		t.Fatalf("Failed creating a temporary directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	overridePath := filepath.Join(tmpDir, "params.json")
	err = os.WriteFile(overridePath, []byte(`{"minTxnFee": 2000, "boxByteMinBalance": 500}`), 0644)
	if err != nil {
		t.Fatalf("Failed writing the override file: %v", err)
	}

	flags := NetworkFlags{Testnet: true, OverrideParamsFile: overridePath}
	err = flags.ResolveNetwork(nil)
	if err != nil {
		t.Fatalf("TestResolveNetworkWithOverrideFile: %s", err)
	}
	params := flags.NetParams()
	if params.MinTxnFee != 2000 || params.BoxByteMinBalance != 500 || params.Name != "testnet" {
		t.Fatalf("TestResolveNetworkWithOverrideFile: overrides weren't applied: %+v", params)
	}

	missing := NetworkFlags{OverrideParamsFile: filepath.Join(tmpDir, "missing.json")}
	if err := missing.ResolveNetwork(nil); err == nil {
		t.Fatalf("TestResolveNetworkWithOverrideFile: expected an error for a missing file")
	}
}
