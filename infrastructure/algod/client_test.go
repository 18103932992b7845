package algod

import (
	"context"
	"errors"
	"net"
	"reflect"
	"testing"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/davecgh/go-spew/spew"
	"github.com/gofiber/fiber/v3"
)

const (
	testToken   = "secret"
	testAddress = "SENDER"
	usdcID      = 31566704
	nftID       = 1001
	goneID      = 404
)

// startFakeAlgod serves a minimal algod API on a random local port.
func startFakeAlgod(t *testing.T) (address string, teardownFunc func()) {
	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		if c.Get(tokenHeader) != testToken {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid API Token"})
		}
		return c.Next()
	})
	app.Get("/v2/transactions/params", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"consensus-version": "v40",
			"fee":               0,
			"genesis-id":        "testnet-v1.0",
			"last-round":        1234,
			"min-fee":           1000,
		})
	})
	app.Get("/v2/accounts/:address", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"address":     c.Params("address"),
			"amount":      5_000_000,
			"min-balance": 400_000,
			"auth-addr":   "AUTH",
			"assets": []fiber.Map{
				{"asset-id": usdcID, "amount": 2_500_000},
				{"asset-id": nftID, "amount": 1},
				{"asset-id": goneID, "amount": 0},
			},
			"apps-local-state": []fiber.Map{{"id": 77}},
		})
	})
	app.Get("/v2/assets/:id", func(c fiber.Ctx) error {
		switch c.Params("id") {
		case "31566704":
			return c.JSON(fiber.Map{"index": usdcID, "params": fiber.Map{
				"decimals": 6, "unit-name": "USDC", "name": "USDC", "total": uint64(18446744073709551615)}})
		case "1001":
			return c.JSON(fiber.Map{"index": nftID, "params": fiber.Map{"decimals": 0, "unit-name": "NFT", "total": 1}})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "asset does not exist"})
	})

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %s", err)
	}
	go app.Listener(listener, fiber.ListenConfig{DisableStartupMessage: true})

	return "http://" + listener.Addr().String(), func() {
		app.Shutdown()
	}
}

func TestTransactionParams(t *testing.T) {
	address, teardownFunc := startFakeAlgod(t)
	defer teardownFunc()

	client := New(&Config{Address: address, Token: testToken})
	params, err := client.TransactionParams(context.Background())
	if err != nil {
		t.Fatalf("TransactionParams: %s", err)
	}
	if params.MinFee != 1000 || params.GenesisID != "testnet-v1.0" || params.ConsensusVersion != "v40" ||
		params.LastRound != 1234 {
		t.Fatalf("TransactionParams: unexpected params %s", spew.Sdump(params))
	}

	unauthorized := New(&Config{Address: address, Token: "wrong"})
	_, err = unauthorized.TransactionParams(context.Background())
	if err == nil {
		t.Fatalf("TransactionParams: expected an error for a wrong token")
	}
}

func TestSyncAccount(t *testing.T) {
	address, teardownFunc := startFakeAlgod(t)
	defer teardownFunc()

	client := New(&Config{Address: address, Token: testToken})
	account, assets, err := client.SyncAccount(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("SyncAccount: %s", err)
	}

	expectedAccount := &model.AccountSnapshot{
		Address:            testAddress,
		AlgoBalance:        5_000_000,
		Assets:             map[model.AssetID]uint64{usdcID: 2_500_000, nftID: 1, goneID: 0},
		OptedInApps:        []model.AppID{77},
		RekeyedTo:          "AUTH",
		ReportedMinBalance: 400_000,
	}
	if !reflect.DeepEqual(account, expectedAccount) {
		t.Fatalf("SyncAccount: expected %s, got %s", spew.Sdump(expectedAccount), spew.Sdump(account))
	}

	if len(assets) != 2 {
		t.Fatalf("SyncAccount: expected the unknown asset to be skipped, got %s", spew.Sdump(assets))
	}
	for _, asset := range assets {
		switch asset.AssetID {
		case usdcID:
			if asset.Decimals != 6 || asset.UnitName != "USDC" || asset.IsCollectible {
				t.Fatalf("SyncAccount: unexpected USDC metadata %s", spew.Sdump(asset))
			}
		case nftID:
			if !asset.IsCollectible {
				t.Fatalf("SyncAccount: asset %d should be a collectible", nftID)
			}
		default:
			t.Fatalf("SyncAccount: unexpected asset %d", asset.AssetID)
		}
	}

	_, err = client.AssetMetadata(context.Background(), goneID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("AssetMetadata: expected ErrNotFound, got %v", err)
	}
}

func TestIsCollectible(t *testing.T) {
	tests := []struct {
		total    uint64
		decimals uint32
		expected bool
	}{
		{1, 0, true},
		{100, 2, true},
		{2, 0, false},
		{1_000_000, 6, true},
		{10_000_000, 6, false},
		{0, 0, false},
	}
	for _, test := range tests {
		if isCollectible(test.total, test.decimals) != test.expected {
			t.Fatalf("isCollectible(%d, %d): expected %t", test.total, test.decimals, test.expected)
		}
	}
}
