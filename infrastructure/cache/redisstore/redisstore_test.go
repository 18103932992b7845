package redisstore

import (
	"context"
	"testing"
	"time"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/alicebob/miniredis/v2"
	"github.com/davecgh/go-spew/spew"
)

const usdcID model.AssetID = 31566704

func TestKeys(t *testing.T) {
	store := newWithClient(nil, "", 0)
	if key := store.accountKey("SENDER"); key != "algoguard:account:SENDER" {
		t.Fatalf("accountKey: got %s", key)
	}
	if key := store.assetKey(usdcID); key != "algoguard:asset:31566704" {
		t.Fatalf("assetKey: got %s", key)
	}
}

func prepareStoreForTest(t *testing.T, accountTTL time.Duration) (*redisStore, *miniredis.Miniredis) {
	server := miniredis.RunT(t)
	store, err := New(context.Background(), &Config{Address: server.Addr(), AccountTTL: accountTTL})
	if err != nil {
		t.Fatalf("New: %s", err)
	}
	t.Cleanup(func() { store.Close() })
	return store.(*redisStore), server
}

func TestRedisStore(t *testing.T) {
	store, _ := prepareStoreForTest(t, time.Minute)
	ctx := context.Background()

	sender := &model.AccountSnapshot{
		Address:     "SENDER",
		AlgoBalance: 1_000_000,
		Assets:      map[model.AssetID]uint64{usdcID: 5},
	}
	usdc := &model.AssetMetadata{AssetID: usdcID, Decimals: 6}
	err := store.SaveAccount(ctx, sender, []*model.AssetMetadata{usdc})
	if err != nil {
		t.Fatalf("SaveAccount: %s", err)
	}

	set, err := store.LoadSet(ctx, "SENDER", "MISSING")
	if err != nil {
		t.Fatalf("LoadSet: %s", err)
	}
	owned := set.BaseOwnedAssetData(usdcID, "SENDER")
	if owned == nil || owned.Amount != 5 || owned.Decimals != 6 {
		t.Fatalf("LoadSet: unexpected holding %s", spew.Sdump(owned))
	}
	if set.CachedAccountDetail("MISSING") != nil {
		t.Fatalf("LoadSet: an account that was never stored was loaded")
	}

	if _, err := store.LoadSet(ctx); err == nil {
		t.Fatalf("LoadSet: expected an error when no address is given")
	}
}

func TestRedisStoreAccountExpiry(t *testing.T) {
	store, server := prepareStoreForTest(t, time.Minute)
	ctx := context.Background()

	sender := &model.AccountSnapshot{
		Address:     "SENDER",
		AlgoBalance: 1_000_000,
		Assets:      map[model.AssetID]uint64{usdcID: 5},
	}
	usdc := &model.AssetMetadata{AssetID: usdcID, Decimals: 6}
	err := store.SaveAccount(ctx, sender, []*model.AssetMetadata{usdc})
	if err != nil {
		t.Fatalf("TestRedisStoreAccountExpiry: SaveAccount: %s", err)
	}

	if ttl := server.TTL(store.accountKey("SENDER")); ttl != time.Minute {
		t.Fatalf("TestRedisStoreAccountExpiry: expected the account to expire in %s, got %s", time.Minute, ttl)
	}
	if ttl := server.TTL(store.assetKey(usdcID)); ttl != 0 {
		t.Fatalf("TestRedisStoreAccountExpiry: expected asset metadata not to expire, got a ttl of %s", ttl)
	}

	server.FastForward(2 * time.Minute)

	if server.Exists(store.accountKey("SENDER")) {
		t.Fatalf("TestRedisStoreAccountExpiry: the account should have expired")
	}
	if !server.Exists(store.assetKey(usdcID)) {
		t.Fatalf("TestRedisStoreAccountExpiry: the asset metadata should still be stored")
	}
	set, err := store.LoadSet(ctx, "SENDER")
	if err != nil {
		t.Fatalf("TestRedisStoreAccountExpiry: LoadSet: %s", err)
	}
	if set.CachedAccountDetail("SENDER") != nil {
		t.Fatalf("TestRedisStoreAccountExpiry: an expired account was loaded")
	}
}

func TestRedisStoreCorruptValue(t *testing.T) {
	store, server := prepareStoreForTest(t, 0)

	err := server.Set(store.accountKey("SENDER"), "not json")
	if err != nil {
		t.Fatalf("TestRedisStoreCorruptValue: Set: %s", err)
	}
	if _, err := store.LoadSet(context.Background(), "SENDER"); err == nil {
		t.Fatalf("TestRedisStoreCorruptValue: expected an error for a corrupt account")
	}
}

func TestNewUnreachable(t *testing.T) {
	server := miniredis.NewMiniRedis()
	err := server.Start()
	if err != nil {
		t.Fatalf("TestNewUnreachable: Start: %s", err)
	}
	address := server.Addr()
	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err = New(ctx, &Config{Address: address}); err == nil {
		t.Fatalf("TestNewUnreachable: expected an error when redis can't be reached")
	}
}
