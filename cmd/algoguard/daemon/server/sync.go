package server

import (
	"context"
	"time"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/minimumbalance"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/domain/validation/transferrequest"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const syncTimeout = 30 * time.Second

func (s *server) Sync(ctx context.Context, request *wire.SyncRequest) (*wire.SyncResponse, error) {
	if s.syncer == nil {
		return nil, status.Error(codes.FailedPrecondition, "the daemon isn't connected to an algod node")
	}
	addresses := request.Addresses
	if len(addresses) == 0 {
		addresses = s.watched
	}

	params, err := s.paramsSource.Params(ctx)
	if err != nil {
		return nil, status.Error(codes.Unavailable, err.Error())
	}
	minimumBalanceCalculator := minimumbalance.NewCalculator(params)

	response := &wire.SyncResponse{
		Synced: []string{},
		Failed: make(map[string]string),
	}
	for _, address := range addresses {
		err := s.syncAddress(ctx, minimumBalanceCalculator, address)
		if err != nil {
			log.Warnf("Couldn't sync account %s: %s", address, err)
			response.Failed[address] = err.Error()
			continue
		}
		response.Synced = append(response.Synced, address)
	}
	return response, nil
}

func (s *server) syncAddress(ctx context.Context, minimumBalanceCalculator model.MinimumBalanceCalculator,
	address string) error {

	if !transferrequest.IsValidAddress(address) {
		return errors.Errorf("%s is not a valid address", address)
	}
	account, assets, err := s.syncer.SyncAccount(ctx, address)
	if err != nil {
		return err
	}
	err = minimumBalanceCalculator.CheckReported(account)
	if err != nil {
		log.Warnf("%s", err)
	}
	return s.store.SaveAccount(ctx, account, assets)
}

// syncLoop refreshes the watched accounts every interval until the server shuts down.
func (s *server) syncLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.syncWatched()
		select {
		case <-s.shutdown:
			return
		case <-ticker.C:
		}
	}
}

func (s *server) syncWatched() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()

	response, err := s.Sync(ctx, &wire.SyncRequest{})
	if err != nil {
		log.Errorf("Error syncing watched accounts: %s", err)
		return
	}
	log.Debugf("Synced %d watched accounts, %d failed", len(response.Synced), len(response.Failed))
}
