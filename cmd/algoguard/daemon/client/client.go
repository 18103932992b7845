package client

import (
	"context"
	"time"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/server"
	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Connect connects to the algoguard daemon, and returns the client instance
func Connect(address string) (wire.AlgoguarddClient, func(), error) {
	// Connection is local, so 1 second timeout is sufficient
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := grpc.DialContext(ctx, address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(server.MaxDaemonSendMsgSize)))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, errors.New("algoguard daemon is not running, start it with `algoguard start-daemon`")
		}
		return nil, nil, err
	}

	return wire.NewAlgoguarddClient(conn), func() {
		conn.Close()
	}, nil
}
