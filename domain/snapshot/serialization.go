package snapshot

import (
	"encoding/json"

	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/pkg/errors"
)

// SerializeAccount encodes an account snapshot for storage.
func SerializeAccount(account *model.AccountSnapshot) ([]byte, error) {
	serialized, err := json.Marshal(account)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't serialize account %s", account.Address)
	}
	return serialized, nil
}

// DeserializeAccount decodes an account snapshot encoded by SerializeAccount.
func DeserializeAccount(serialized []byte) (*model.AccountSnapshot, error) {
	account := &model.AccountSnapshot{}
	err := json.Unmarshal(serialized, account)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't deserialize account")
	}
	if account.Address == "" {
		return nil, errors.New("deserialized account has no address")
	}
	return account, nil
}

// SerializeAsset encodes asset metadata for storage.
func SerializeAsset(asset *model.AssetMetadata) ([]byte, error) {
	serialized, err := json.Marshal(asset)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't serialize asset %d", asset.AssetID)
	}
	return serialized, nil
}

// DeserializeAsset decodes asset metadata encoded by SerializeAsset.
func DeserializeAsset(serialized []byte) (*model.AssetMetadata, error) {
	asset := &model.AssetMetadata{}
	err := json.Unmarshal(serialized, asset)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't deserialize asset")
	}
	return asset, nil
}
