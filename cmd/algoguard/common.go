package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/infrastructure/algod"
	"github.com/algoguard/algoguard/infrastructure/cache/redisstore"
	"github.com/algoguard/algoguard/infrastructure/db/snapshotstore"
	"github.com/algoguard/algoguard/util"
)

const daemonTimeout = 2 * time.Minute

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func defaultStoreDir(params *protocolparams.Params) string {
	return filepath.Join(util.AppDir("algoguard"), params.Name, "snapshots")
}

// openStore opens redis when an address is configured, or the local leveldb store otherwise.
func openStore(flags *StoreFlags, params *protocolparams.Params) (snapshot.Store, error) {
	if flags.RedisAddress != "" {
		ttl := flags.RedisTTL
		if ttl == 0 {
			ttl = defaultRedisTTL
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return redisstore.New(ctx, &redisstore.Config{
			Address:    flags.RedisAddress,
			Password:   flags.RedisPassword,
			DB:         flags.RedisDB,
			Namespace:  "algoguard:" + params.Name,
			AccountTTL: ttl,
		})
	}

	storeDir := flags.StoreDir
	if storeDir == "" {
		storeDir = defaultStoreDir(params)
	}
	err := os.MkdirAll(storeDir, 0700)
	if err != nil {
		return nil, err
	}
	return snapshotstore.New(storeDir)
}

func newAlgodClient(flags *AlgodFlags) *algod.Client {
	address := flags.AlgodAddress
	if address == "" {
		address = defaultAlgodAddress
	}
	return algod.New(&algod.Config{
		Address: address,
		Token:   flags.AlgodToken,
	})
}
