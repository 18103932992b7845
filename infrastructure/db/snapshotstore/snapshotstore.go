package snapshotstore

import (
	"context"
	"strconv"

	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/infrastructure/db/ldb"
	"github.com/pkg/errors"
)

var (
	accountsBucket = []byte("accounts/")
	assetsBucket   = []byte("assets/")
)

func accountKey(address string) []byte {
	return append(append([]byte{}, accountsBucket...), address...)
}

func assetKey(assetID model.AssetID) []byte {
	return append(append([]byte{}, assetsBucket...), strconv.FormatUint(uint64(assetID), 10)...)
}

type snapshotStore struct {
	db *ldb.LevelDB
}

// New opens a leveldb-backed snapshot store at the given path
func New(path string) (snapshot.Store, error) {
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	return &snapshotStore{db: db}, nil
}

func (s *snapshotStore) SaveAccount(ctx context.Context, account *model.AccountSnapshot,
	assets []*model.AssetMetadata) error {

	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	batch := s.db.NewBatch()
	serializedAccount, err := snapshot.SerializeAccount(account)
	if err != nil {
		return err
	}
	batch.Put(accountKey(account.Address), serializedAccount)

	for _, asset := range assets {
		serializedAsset, err := snapshot.SerializeAsset(asset)
		if err != nil {
			return err
		}
		batch.Put(assetKey(asset.AssetID), serializedAsset)
	}

	err = s.db.Write(batch)
	if err != nil {
		return errors.Wrapf(err, "couldn't store account %s", account.Address)
	}
	log.Debugf("Stored account %s with %d assets", account.Address, len(assets))
	return nil
}

// LoadSet loads the given accounts, or every stored account if none are given.
func (s *snapshotStore) LoadSet(ctx context.Context, addresses ...string) (*snapshot.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	var accounts []*model.AccountSnapshot
	var err error
	if len(addresses) == 0 {
		accounts, err = s.allAccounts()
	} else {
		accounts, err = s.accounts(addresses)
	}
	if err != nil {
		return nil, err
	}

	assets := make([]*model.AssetMetadata, 0)
	for _, assetID := range snapshot.HeldAssetIDs(accounts) {
		serializedAsset, err := s.db.Get(assetKey(assetID))
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't load asset %d", assetID)
		}
		if serializedAsset == nil {
			log.Debugf("No metadata is stored for asset %d", assetID)
			continue
		}
		asset, err := snapshot.DeserializeAsset(serializedAsset)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return snapshot.New(accounts, assets), nil
}

func (s *snapshotStore) accounts(addresses []string) ([]*model.AccountSnapshot, error) {
	accounts := make([]*model.AccountSnapshot, 0, len(addresses))
	for _, address := range addresses {
		serializedAccount, err := s.db.Get(accountKey(address))
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't load account %s", address)
		}
		if serializedAccount == nil {
			log.Debugf("Account %s isn't stored", address)
			continue
		}
		account, err := snapshot.DeserializeAccount(serializedAccount)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (s *snapshotStore) allAccounts() ([]*model.AccountSnapshot, error) {
	var accounts []*model.AccountSnapshot
	err := s.db.ForEach(accountsBucket, func(_ []byte, value []byte) error {
		account, err := snapshot.DeserializeAccount(value)
		if err != nil {
			return err
		}
		accounts = append(accounts, account)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *snapshotStore) Close() error {
	return s.db.Close()
}
