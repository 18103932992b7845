package snapshot

import (
	"reflect"
	"testing"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/davecgh/go-spew/spew"
)

func TestAccountSerialization(t *testing.T) {
	account := &model.AccountSnapshot{
		Address:            "SENDER",
		AlgoBalance:        1_234_567,
		Assets:             map[model.AssetID]uint64{usdcID: 5, nftID: 1},
		OptedInApps:        []model.AppID{9},
		RekeyedTo:          "AUTH",
		TotalAppSchema:     model.StateSchema{NumUint: 1},
		ReportedMinBalance: 453_500,
	}
	serialized, err := SerializeAccount(account)
	if err != nil {
		t.Fatalf("SerializeAccount: %s", err)
	}
	deserialized, err := DeserializeAccount(serialized)
	if err != nil {
		t.Fatalf("DeserializeAccount: %s", err)
	}
	if !reflect.DeepEqual(account, deserialized) {
		t.Fatalf("TestAccountSerialization: expected %s, got %s", spew.Sdump(account), spew.Sdump(deserialized))
	}

	if _, err := DeserializeAccount([]byte(`{"algoBalance": 5}`)); err == nil {
		t.Fatalf("DeserializeAccount: expected an error for an account without an address")
	}
	if _, err := DeserializeAccount([]byte(`not json`)); err == nil {
		t.Fatalf("DeserializeAccount: expected an error for malformed data")
	}
}

func TestHeldAssetIDs(t *testing.T) {
	accounts := []*model.AccountSnapshot{
		{Address: "A", Assets: map[model.AssetID]uint64{usdcID: 1}},
		{Address: "B", Assets: map[model.AssetID]uint64{usdcID: 2, nftID: 1}},
		{Address: "C"},
	}
	assetIDs := HeldAssetIDs(accounts)
	if len(assetIDs) != 2 {
		t.Fatalf("HeldAssetIDs: expected 2 distinct assets, got %v", assetIDs)
	}
}
