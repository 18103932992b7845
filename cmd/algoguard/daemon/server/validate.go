package server

import (
	"context"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/domain/validation/amountvalidator"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/utils/amountconversion"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *server) Validate(ctx context.Context, request *wire.ValidateRequest) (*wire.ValidateResponse, error) {
	params, err := s.paramsSource.Params(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	set, err := s.store.LoadSet(ctx, request.Transfer.Sender)
	if err != nil {
		return nil, toStatusError(err)
	}

	validator := amountvalidator.New(params, set, set)
	verdict, err := validator.ValidateTransfer(&request.Transfer)
	if err != nil {
		return nil, toStatusError(err)
	}
	log.Infof("Transfer of %s of asset %d from %s: %s",
		request.Transfer.Amount, request.Transfer.AssetID, request.Transfer.Sender, verdict.Outcome)

	response := &wire.ValidateResponse{
		Outcome:         verdict.Outcome.Kind.String(),
		AccountCloseOut: verdict.IsAccountCloseOut,
		Result:          verdict.Result,
	}
	if outcomeErr := verdict.Outcome.Err(); outcomeErr != nil {
		response.Error = outcomeErr.Error()
	}
	if verdict.Result.SelectedAmount != nil {
		response.Amount = *verdict.Result.SelectedAmount
		response.FormattedAmount = formatAmount(set, request.Transfer.AssetID, response.Amount)
	}
	return response, nil
}

func (s *server) MaxSendable(ctx context.Context, request *wire.MaxSendableRequest) (*wire.MaxSendableResponse, error) {
	params, err := s.paramsSource.Params(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	set, err := s.store.LoadSet(ctx, request.Address)
	if err != nil {
		return nil, toStatusError(err)
	}

	validator := amountvalidator.New(params, set, set)
	amount, ok := validator.MaximumSendableAmount(request.Address, request.AssetID)
	if !ok {
		return &wire.MaxSendableResponse{Known: false}, nil
	}
	return &wire.MaxSendableResponse{
		Known:           true,
		Amount:          amount,
		FormattedAmount: formatAmount(set, request.AssetID, amount),
	}, nil
}

func formatAmount(set *snapshot.Set, assetID model.AssetID, amount uint64) string {
	asset := set.CachedAssetDetail(assetID)
	if asset == nil {
		asset = set.CachedCollectibleByID(assetID)
	}
	if asset == nil {
		return ""
	}
	return amountconversion.FormatAmountWithUnit(amount, asset.Decimals, asset.UnitName)
}
