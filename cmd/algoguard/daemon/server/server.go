package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/protocolparams"
	"github.com/algoguard/algoguard/domain/snapshot"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/infrastructure/algod"
	"github.com/algoguard/algoguard/infrastructure/os/signal"
	"github.com/algoguard/algoguard/util/panics"
	"github.com/algoguard/algoguard/util/profiling"
	"github.com/algoguard/algoguard/version"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

// MaxDaemonSendMsgSize is the max send message size used for the daemon server.
// Used both for sending and receiving, since the daemon and its clients exchange small messages.
const MaxDaemonSendMsgSize = 1 << 20

const paramsCacheTTL = time.Minute

// accountSyncer fetches an account and the metadata of its assets from the network.
type accountSyncer interface {
	SyncAccount(ctx context.Context, address string) (*model.AccountSnapshot, []*model.AssetMetadata, error)
}

// Config holds everything the daemon needs to run.
type Config struct {
	Params         *protocolparams.Params
	Listen         string
	HTTPListen     string
	Store          snapshot.Store
	Algod          *algod.Client
	WatchAddresses []string
	SyncInterval   time.Duration
	Profile        string
	LogLevel       string
	LogDir         string
}

type server struct {
	paramsSource protocolparams.Source
	store        snapshot.Store
	syncer       accountSyncer
	watched      []string
	shutdown     chan struct{}
}

func newServer(paramsSource protocolparams.Source, store snapshot.Store, syncer accountSyncer,
	watched []string) *server {

	return &server{
		paramsSource: paramsSource,
		store:        store,
		syncer:       syncer,
		watched:      watched,
		shutdown:     make(chan struct{}),
	}
}

// Start starts the algoguard daemon and blocks until it's interrupted
func Start(cfg *Config) error {
	logFile, errLogFile := defaultLogFile, defaultErrLogFile
	if cfg.LogDir != "" {
		logFile = filepath.Join(cfg.LogDir, "daemon.log")
		errLogFile = filepath.Join(cfg.LogDir, "daemon_err.log")
	}
	initLog(logFile, errLogFile, cfg.LogLevel)

	defer panics.HandlePanic(log, "MAIN", nil)
	log.Infof("Version %s", version.Version())
	interrupt := signal.InterruptListener()

	if cfg.Profile != "" {
		profiler := profiling.Start(cfg.Profile, log)
		defer profiler.Stop()
	}

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return errors.Wrapf(err, "Error listening to TCP on %s", cfg.Listen)
	}
	log.Infof("Listening to TCP on %s", cfg.Listen)

	var paramsSource protocolparams.Source
	var syncer accountSyncer
	if cfg.Algod != nil {
		paramsSource = protocolparams.NewLiveSource(cfg.Params, cfg.Algod, paramsCacheTTL)
		syncer = cfg.Algod
	} else {
		log.Infof("No algod node is configured, using the static %s params", cfg.Params.Name)
		paramsSource = protocolparams.NewStaticSource(cfg.Params)
	}
	serverInstance := newServer(paramsSource, cfg.Store, syncer, cfg.WatchAddresses)

	if syncer != nil && len(cfg.WatchAddresses) > 0 && cfg.SyncInterval > 0 {
		spawn("serverInstance.syncLoop", func() {
			serverInstance.syncLoop(cfg.SyncInterval)
		})
	}

	grpcServer := grpc.NewServer(grpc.MaxSendMsgSize(MaxDaemonSendMsgSize), grpc.MaxRecvMsgSize(MaxDaemonSendMsgSize))
	wire.RegisterAlgoguarddServer(grpcServer, serverInstance)

	spawn("grpcServer.Serve", func() {
		err := grpcServer.Serve(listener)
		if err != nil {
			printErrorAndExit(errors.Wrap(err, "Error serving gRPC"))
		}
	})

	httpApp := serverInstance.newHTTPApp()
	if cfg.HTTPListen != "" {
		spawn("httpApp.Listen", func() {
			log.Infof("Serving HTTP on %s", cfg.HTTPListen)
			err := httpApp.Listen(cfg.HTTPListen, fiberListenConfig)
			if err != nil {
				printErrorAndExit(errors.Wrap(err, "Error serving HTTP"))
			}
		})
	}

	select {
	case <-serverInstance.shutdown:
	case <-interrupt:
		close(serverInstance.shutdown)
	}

	const stopTimeout = 2 * time.Second

	stopChan := make(chan interface{})
	spawn("gRPCServer.Stop", func() {
		grpcServer.GracefulStop()
		if cfg.HTTPListen != "" {
			err := httpApp.ShutdownWithTimeout(stopTimeout)
			if err != nil {
				log.Warnf("Could not stop the HTTP server: %s", err)
			}
		}
		close(stopChan)
	})

	select {
	case <-stopChan:
	case <-time.After(stopTimeout):
		log.Warnf("Could not gracefully stop: timed out after %s", stopTimeout)
		grpcServer.Stop()
	}

	return errors.Wrap(cfg.Store.Close(), "Error closing the snapshot store")
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
