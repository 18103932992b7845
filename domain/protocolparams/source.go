package protocolparams

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// TransactionParams are the suggested transaction parameters reported by a node.
type TransactionParams struct {
	Fee              uint64
	MinFee           uint64
	GenesisID        string
	ConsensusVersion string
	LastRound        uint64
}

// TransactionParamsFetcher fetches suggested transaction parameters from a node.
type TransactionParamsFetcher interface {
	TransactionParams(ctx context.Context) (*TransactionParams, error)
}

// Source provides the protocol params to validate against.
type Source interface {
	Params(ctx context.Context) (*Params, error)
}

type staticSource struct {
	params *Params
}

// NewStaticSource returns a Source that always returns the given params.
func NewStaticSource(params *Params) Source {
	return &staticSource{params: params}
}

func (s *staticSource) Params(context.Context) (*Params, error) {
	return s.params, nil
}

type liveSource struct {
	base    *Params
	fetcher TransactionParamsFetcher
	ttl     time.Duration
	now     func() time.Time

	// refreshGroup collapses concurrent refreshes into a single fetch,
	// which runs without holding mutex.
	refreshGroup singleflight.Group

	mutex     sync.Mutex
	cached    *Params
	fetchedAt time.Time
}

// NewLiveSource returns a Source that keeps the constants of base, and takes the
// minimum fee and consensus version from the node behind fetcher. Results are
// cached for ttl. When the node can't be reached, the last known params are
// used, or base if none are known yet.
func NewLiveSource(base *Params, fetcher TransactionParamsFetcher, ttl time.Duration) Source {
	return &liveSource{
		base:    base,
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *liveSource) Params(ctx context.Context) (*Params, error) {
	if cached, ok := s.freshCached(); ok {
		return cached, nil
	}

	params, err, _ := s.refreshGroup.Do("params", func() (interface{}, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return params.(*Params), nil
}

func (s *liveSource) freshCached() (*Params, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.cached, true
	}
	return nil, false
}

func (s *liveSource) refresh(ctx context.Context) (*Params, error) {
	transactionParams, err := s.fetcher.TransactionParams(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err != nil {
		fallback := s.cached
		if fallback == nil {
			fallback = s.base
		}
		log.Warnf("Couldn't fetch transaction params, using the %s params with min fee %d: %s",
			fallback.Name, fallback.MinTxnFee, err)
		return fallback, nil
	}

	if s.base.GenesisID != "" && transactionParams.GenesisID != "" &&
		transactionParams.GenesisID != s.base.GenesisID {
		return nil, errors.Errorf("node is on network %s, expected %s",
			transactionParams.GenesisID, s.base.GenesisID)
	}

	params := s.base.Clone()
	if transactionParams.MinFee > 0 {
		params.MinTxnFee = transactionParams.MinFee
	}
	params.ConsensusVersion = transactionParams.ConsensusVersion

	if s.cached != nil && s.cached.ConsensusVersion != params.ConsensusVersion {
		log.Warnf("Consensus version changed from %s to %s at round %d, minimum balance constants may be stale",
			s.cached.ConsensusVersion, params.ConsensusVersion, transactionParams.LastRound)
	}
	if params.MinTxnFee != s.base.MinTxnFee {
		log.Debugf("Node reports a min fee of %d, preset is %d", params.MinTxnFee, s.base.MinTxnFee)
	}

	s.cached = params
	s.fetchedAt = s.now()
	return params, nil
}
