package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Config configures a redis-backed snapshot store.
type Config struct {
	Address   string
	Password  string
	DB        int
	Namespace string

	// AccountTTL is how long an account snapshot stays usable. Asset metadata
	// rarely changes and never expires.
	AccountTTL time.Duration
}

type redisStore struct {
	client     redis.UniversalClient
	namespace  string
	accountTTL time.Duration
}

// New connects to redis and returns a snapshot store that keeps its keys under cfg.Namespace.
func New(ctx context.Context, cfg *Config) (snapshot.Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := client.Ping(ctx).Err()
	if err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "couldn't connect to redis at %s", cfg.Address)
	}
	return newWithClient(client, cfg.Namespace, cfg.AccountTTL), nil
}

func newWithClient(client redis.UniversalClient, namespace string, accountTTL time.Duration) *redisStore {
	if namespace == "" {
		namespace = "algoguard"
	}
	return &redisStore{
		client:     client,
		namespace:  namespace,
		accountTTL: accountTTL,
	}
}

func (s *redisStore) accountKey(address string) string {
	return fmt.Sprintf("%s:account:%s", s.namespace, address)
}

func (s *redisStore) assetKey(assetID model.AssetID) string {
	return fmt.Sprintf("%s:asset:%d", s.namespace, assetID)
}

func (s *redisStore) SaveAccount(ctx context.Context, account *model.AccountSnapshot,
	assets []*model.AssetMetadata) error {

	serializedAccount, err := snapshot.SerializeAccount(account)
	if err != nil {
		return err
	}
	serializedAssets := make([][]byte, len(assets))
	for i, asset := range assets {
		serializedAssets[i], err = snapshot.SerializeAsset(asset)
		if err != nil {
			return err
		}
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.accountKey(account.Address), serializedAccount, s.accountTTL)
		for i, asset := range assets {
			pipe.Set(ctx, s.assetKey(asset.AssetID), serializedAssets[i], 0)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "couldn't store account %s in redis", account.Address)
	}
	log.Debugf("Stored account %s with %d assets in redis", account.Address, len(assets))
	return nil
}

// LoadSet loads the given accounts. Redis can't list accounts cheaply, so at least
// one address is required.
func (s *redisStore) LoadSet(ctx context.Context, addresses ...string) (*snapshot.Set, error) {
	if len(addresses) == 0 {
		return nil, errors.New("the redis snapshot store requires the addresses to load")
	}

	accountKeys := make([]string, len(addresses))
	for i, address := range addresses {
		accountKeys[i] = s.accountKey(address)
	}
	serializedAccounts, err := s.client.MGet(ctx, accountKeys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load accounts from redis")
	}

	accounts := make([]*model.AccountSnapshot, 0, len(addresses))
	for i, serializedAccount := range serializedAccounts {
		value, ok := serializedAccount.(string)
		if !ok {
			log.Debugf("Account %s isn't stored in redis", addresses[i])
			continue
		}
		account, err := snapshot.DeserializeAccount([]byte(value))
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	assets, err := s.loadAssets(ctx, snapshot.HeldAssetIDs(accounts))
	if err != nil {
		return nil, err
	}
	return snapshot.New(accounts, assets), nil
}

func (s *redisStore) loadAssets(ctx context.Context, assetIDs []model.AssetID) ([]*model.AssetMetadata, error) {
	if len(assetIDs) == 0 {
		return nil, nil
	}
	assetKeys := make([]string, len(assetIDs))
	for i, assetID := range assetIDs {
		assetKeys[i] = s.assetKey(assetID)
	}
	serializedAssets, err := s.client.MGet(ctx, assetKeys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "couldn't load assets from redis")
	}

	assets := make([]*model.AssetMetadata, 0, len(assetIDs))
	for i, serializedAsset := range serializedAssets {
		value, ok := serializedAsset.(string)
		if !ok {
			log.Debugf("No metadata is stored in redis for asset %d", assetIDs[i])
			continue
		}
		asset, err := snapshot.DeserializeAsset([]byte(value))
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func (s *redisStore) Close() error {
	return errors.WithStack(s.client.Close())
}
