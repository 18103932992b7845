package algod

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/gofiber/fiber/v3/client"
	"github.com/pkg/errors"
)

const tokenHeader = "X-Algo-API-Token"

// ErrNotFound is returned when algod doesn't know the requested entity.
var ErrNotFound = errors.New("not found")

// Config configures an algod client.
type Config struct {
	Address string
	Token   string
	Timeout time.Duration
}

// Client fetches account and asset state from an algod node.
type Client struct {
	client *client.Client
}

// New returns a client for the algod node at cfg.Address.
func New(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	httpClient := client.New().
		SetBaseURL(cfg.Address).
		SetTimeout(timeout)
	if cfg.Token != "" {
		httpClient.SetHeader(tokenHeader, cfg.Token)
	}
	return &Client{client: httpClient}
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	log.Tracef("GET %s", path)
	response, err := c.client.Get(path, client.Config{Ctx: ctx})
	if err != nil {
		return errors.Wrapf(err, "couldn't reach algod for %s", path)
	}
	defer response.Close()

	switch response.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return errors.Wrapf(ErrNotFound, "algod has no %s", path)
	default:
		var algodErr errorResponse
		if response.JSON(&algodErr) != nil || algodErr.Message == "" {
			algodErr.Message = string(response.Body())
		}
		return errors.Errorf("algod returned %d for %s: %s", response.StatusCode(), path, algodErr.Message)
	}

	err = response.JSON(result)
	if err != nil {
		return errors.Wrapf(err, "couldn't decode the algod response for %s", path)
	}
	return nil
}

// TransactionParams returns the node's suggested transaction parameters.
func (c *Client) TransactionParams(ctx context.Context) (*protocolparams.TransactionParams, error) {
	response := &transactionParamsResponse{}
	err := c.get(ctx, "/v2/transactions/params", response)
	if err != nil {
		return nil, err
	}
	return &protocolparams.TransactionParams{
		Fee:              response.Fee,
		MinFee:           response.MinFee,
		GenesisID:        response.GenesisID,
		ConsensusVersion: response.ConsensusVersion,
		LastRound:        response.LastRound,
	}, nil
}

// AccountSnapshot returns a snapshot of the account's current state.
func (c *Client) AccountSnapshot(ctx context.Context, address string) (*model.AccountSnapshot, error) {
	response := &accountResponse{}
	err := c.get(ctx, fmt.Sprintf("/v2/accounts/%s", address), response)
	if err != nil {
		return nil, err
	}
	if response.Address != "" && response.Address != address {
		return nil, errors.Errorf("algod returned account %s when asked for %s", response.Address, address)
	}

	account := &model.AccountSnapshot{
		Address:            address,
		AlgoBalance:        response.Amount,
		Assets:             make(map[model.AssetID]uint64, len(response.Assets)),
		RekeyedTo:          response.AuthAddr,
		CreatedApps:        response.TotalCreatedApps,
		CreatedAssets:      response.TotalCreatedAssets,
		ExtraAppPages:      response.AppsTotalExtraPages,
		TotalBoxes:         response.TotalBoxes,
		TotalBoxBytes:      response.TotalBoxBytes,
		ReportedMinBalance: response.MinBalance,
		TotalAppSchema: model.StateSchema{
			NumUint:      response.AppsTotalSchema.NumUint,
			NumByteSlice: response.AppsTotalSchema.NumByteSlice,
		},
	}
	for _, holding := range response.Assets {
		account.Assets[model.AssetID(holding.AssetID)] = holding.Amount
	}
	for _, localState := range response.AppsLocalState {
		account.OptedInApps = append(account.OptedInApps, model.AppID(localState.ID))
	}
	return account, nil
}

// AssetMetadata returns the metadata of the asset. Assets whose total supply is
// exactly one whole unit are marked as collectibles.
func (c *Client) AssetMetadata(ctx context.Context, assetID model.AssetID) (*model.AssetMetadata, error) {
	if assetID.IsAlgo() {
		return model.AlgoMetadata(), nil
	}
	response := &assetResponse{}
	err := c.get(ctx, fmt.Sprintf("/v2/assets/%d", assetID), response)
	if err != nil {
		return nil, err
	}
	return &model.AssetMetadata{
		AssetID:       assetID,
		Decimals:      response.Params.Decimals,
		UnitName:      response.Params.UnitName,
		Name:          response.Params.Name,
		Verification:  model.VerificationUnverified,
		IsCollectible: isCollectible(response.Params.Total, response.Params.Decimals),
	}, nil
}

func isCollectible(total uint64, decimals uint32) bool {
	if total == 0 || decimals > model.MaxAssetDecimals {
		return false
	}
	wholeUnit := uint64(1)
	for i := uint32(0); i < decimals; i++ {
		wholeUnit *= 10
	}
	return total == wholeUnit
}

// SyncAccount fetches the account together with the metadata of every asset it holds.
// Assets algod no longer knows, such as destroyed ones, are skipped.
func (c *Client) SyncAccount(ctx context.Context, address string) (*model.AccountSnapshot, []*model.AssetMetadata, error) {
	account, err := c.AccountSnapshot(ctx, address)
	if err != nil {
		return nil, nil, err
	}

	assets := make([]*model.AssetMetadata, 0, len(account.Assets))
	for assetID := range account.Assets {
		asset, err := c.AssetMetadata(ctx, assetID)
		if errors.Is(err, ErrNotFound) {
			log.Warnf("Account %s holds asset %d which algod doesn't know", address, assetID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		assets = append(assets, asset)
	}
	log.Debugf("Synced account %s: %d microAlgos, %d assets, %d apps",
		address, account.AlgoBalance, len(account.Assets), len(account.OptedInApps))
	return account, assets, nil
}
