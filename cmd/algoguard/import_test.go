package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/transferrequest"
	"github.com/davecgh/go-spew/spew"
)

func writeSnapshotFile(t *testing.T, testName string, content string) string {
	path := filepath.Join(t.TempDir(), "snapshots.json")
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		t.Fatalf("%s: WriteFile unexpectedly failed: %s", testName, err)
	}
	return path
}

func TestReadSnapshotFile(t *testing.T) {
	address := transferrequest.EncodeAddress([32]byte{7})
	path := writeSnapshotFile(t, "TestReadSnapshotFile", `{
		"accounts": [{"address": "`+address+`", "algoBalance": 1000000, "assets": {"31566704": 5}}],
		"assets": [{"assetId": 31566704, "decimals": 6, "unitName": "USDC"}, {"assetId": 99, "decimals": 0}]
	}`)

	content, err := readSnapshotFile(path)
	if err != nil {
		t.Fatalf("TestReadSnapshotFile: readSnapshotFile unexpectedly failed: %s", err)
	}
	if len(content.Accounts) != 1 || len(content.Assets) != 2 {
		t.Fatalf("TestReadSnapshotFile: unexpected content: %s", spew.Sdump(content))
	}

	assets := map[model.AssetID]*model.AssetMetadata{}
	for _, asset := range content.Assets {
		assets[asset.AssetID] = asset
	}
	held := assetsOf(content.Accounts[0], assets)
	if len(held) != 1 || held[0].AssetID != 31566704 {
		t.Fatalf("TestReadSnapshotFile: expected only the held asset, got %s", spew.Sdump(held))
	}
}

func TestReadSnapshotFileErrors(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError string
	}{
		{"invalid address", `{"accounts": [{"address": "NOPE"}]}`, "invalid address"},
		{"unknown field", `{"accounts": [], "blocks": []}`, "couldn't parse"},
		{"not json", `accounts`, "couldn't parse"},
		{"null account", `{"accounts": [null], "assets": []}`, "empty account entry"},
		{"null asset", `{"accounts": [], "assets": [null]}`, "empty asset entry"},
	}

	for _, test := range tests {
		path := writeSnapshotFile(t, "TestReadSnapshotFileErrors", test.content)
		_, err := readSnapshotFile(path)
		if err == nil || !strings.Contains(err.Error(), test.expectedError) {
			t.Fatalf("TestReadSnapshotFileErrors: %s: expected an error containing %q, got %v",
				test.name, test.expectedError, err)
		}
	}
}
