package snapshot

import (
	"reflect"
	"testing"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/davecgh/go-spew/spew"
)

const (
	usdcID  model.AssetID = 31566704
	nftID   model.AssetID = 1001
	ghostID model.AssetID = 77
)

func testSet() *Set {
	accounts := []*model.AccountSnapshot{{
		Address:     "SENDER",
		AlgoBalance: 1_000_000,
		Assets:      map[model.AssetID]uint64{usdcID: 2_500_000, nftID: 1, ghostID: 10},
	}}
	assets := []*model.AssetMetadata{
		{AssetID: usdcID, Decimals: 6, UnitName: "USDC"},
		{AssetID: nftID, Decimals: 0, IsCollectible: true},
	}
	return New(accounts, assets)
}

func TestBaseOwnedAssetData(t *testing.T) {
	set := testSet()

	tests := []struct {
		name     string
		assetID  model.AssetID
		address  string
		expected *model.OwnedAssetData
	}{
		{"algo", model.AlgoAssetID, "SENDER",
			&model.OwnedAssetData{AssetID: model.AlgoAssetID, Amount: 1_000_000, Decimals: 6, IsAlgo: true}},
		{"fungible asset", usdcID, "SENDER",
			&model.OwnedAssetData{AssetID: usdcID, Amount: 2_500_000, Decimals: 6}},
		{"collectible", nftID, "SENDER",
			&model.OwnedAssetData{AssetID: nftID, Amount: 1, Decimals: 0}},
		{"held asset without metadata", ghostID, "SENDER", nil},
		{"asset not opted in", 5, "SENDER", nil},
		{"unknown account", model.AlgoAssetID, "STRANGER", nil},
	}
	for _, test := range tests {
		result := set.BaseOwnedAssetData(test.assetID, test.address)
		if !reflect.DeepEqual(result, test.expected) {
			t.Fatalf("TestBaseOwnedAssetData: %s: expected %s, got %s",
				test.name, spew.Sdump(test.expected), spew.Sdump(result))
		}
	}
}

func TestAssetLookups(t *testing.T) {
	set := testSet()
	if set.CachedAssetDetail(nftID) != nil {
		t.Fatalf("TestAssetLookups: a collectible shouldn't be returned as a fungible asset")
	}
	if set.CachedCollectibleByID(usdcID) != nil {
		t.Fatalf("TestAssetLookups: a fungible asset shouldn't be returned as a collectible")
	}
	if algo := set.CachedAssetDetail(model.AlgoAssetID); algo == nil || algo.Decimals != model.AlgoDecimals {
		t.Fatalf("TestAssetLookups: ALGO should always be known, got %s", spew.Sdump(algo))
	}
}

func TestSetIsImmutable(t *testing.T) {
	account := &model.AccountSnapshot{Address: "SENDER", AlgoBalance: 10, Assets: map[model.AssetID]uint64{usdcID: 1}}
	set := New([]*model.AccountSnapshot{account}, nil)

	account.Assets[usdcID] = 2
	returned := set.CachedAccountDetail("SENDER")
	if returned.Assets[usdcID] != 1 {
		t.Fatalf("TestSetIsImmutable: mutating the input changed the set")
	}
	returned.AlgoBalance = 0
	if set.CachedAccountDetail("SENDER").AlgoBalance != 10 {
		t.Fatalf("TestSetIsImmutable: mutating a returned snapshot changed the set")
	}

	updated := set.With(&model.AccountSnapshot{Address: "SENDER", AlgoBalance: 20},
		&model.AssetMetadata{AssetID: usdcID, Decimals: 6})
	if set.CachedAccountDetail("SENDER").AlgoBalance != 10 || set.CachedAssetDetail(usdcID) != nil {
		t.Fatalf("TestSetIsImmutable: With changed the receiver")
	}
	if updated.CachedAccountDetail("SENDER").AlgoBalance != 20 || updated.CachedAssetDetail(usdcID) == nil {
		t.Fatalf("TestSetIsImmutable: With didn't apply the update: %s", spew.Sdump(updated.Accounts()))
	}
	if len(updated.Accounts()) != 1 {
		t.Fatalf("TestSetIsImmutable: expected the account to be replaced, got %d accounts", len(updated.Accounts()))
	}
}
