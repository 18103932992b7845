package protocolparams

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

type overrideParamsConfig struct {
	Name                     *string `json:"name"`
	GenesisID                *string `json:"genesisId"`
	ConsensusVersion         *string `json:"consensusVersion"`
	MinBalance               *uint64 `json:"minBalance"`
	MinTxnFee                *uint64 `json:"minTxnFee"`
	AppFlatParamsMinBalance  *uint64 `json:"appFlatParamsMinBalance"`
	AppFlatOptInMinBalance   *uint64 `json:"appFlatOptInMinBalance"`
	SchemaMinBalancePerEntry *uint64 `json:"schemaMinBalancePerEntry"`
	SchemaUintMinBalance     *uint64 `json:"schemaUintMinBalance"`
	SchemaBytesMinBalance    *uint64 `json:"schemaBytesMinBalance"`
	BoxFlatMinBalance        *uint64 `json:"boxFlatMinBalance"`
	BoxByteMinBalance        *uint64 `json:"boxByteMinBalance"`
}

// LoadOverrideFile returns a copy of base with the fields set in the JSON
// file at path replaced.
func LoadOverrideFile(base *Params, path string) (*Params, error) {
	overrideFile, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open params override file %s", path)
	}
	defer overrideFile.Close()

	params, err := ApplyOverrides(base, overrideFile)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't apply params override file %s", path)
	}
	return params, nil
}

// ApplyOverrides returns a copy of base with the fields set in the JSON read from r replaced.
// Unknown fields are rejected so that a typo doesn't silently keep the preset value.
func ApplyOverrides(base *Params, r io.Reader) (*Params, error) {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	config := &overrideParamsConfig{}
	err := decoder.Decode(config)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	params := base.Clone()
	if config.Name != nil {
		params.Name = *config.Name
	}
	if config.GenesisID != nil {
		params.GenesisID = *config.GenesisID
	}
	if config.ConsensusVersion != nil {
		params.ConsensusVersion = *config.ConsensusVersion
	}

	uintOverrides := []struct {
		value  *uint64
		target *uint64
	}{
		{config.MinBalance, &params.MinBalance},
		{config.MinTxnFee, &params.MinTxnFee},
		{config.AppFlatParamsMinBalance, &params.AppFlatParamsMinBalance},
		{config.AppFlatOptInMinBalance, &params.AppFlatOptInMinBalance},
		{config.SchemaMinBalancePerEntry, &params.SchemaMinBalancePerEntry},
		{config.SchemaUintMinBalance, &params.SchemaUintMinBalance},
		{config.SchemaBytesMinBalance, &params.SchemaBytesMinBalance},
		{config.BoxFlatMinBalance, &params.BoxFlatMinBalance},
		{config.BoxByteMinBalance, &params.BoxByteMinBalance},
	}
	for _, override := range uintOverrides {
		if override.value != nil {
			*override.target = *override.value
		}
	}

	if params.MinTxnFee == 0 {
		return nil, errors.Errorf("minTxnFee must be positive")
	}
	return params, nil
}
