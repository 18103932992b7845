package profiling

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/algoguard/algoguard/infrastructure/logger"
	"github.com/algoguard/algoguard/util/panics"
	"github.com/pkg/errors"
)

const shutdownTimeout = 2 * time.Second

// Server serves pprof data on its own mux, so nothing else registered on
// http.DefaultServeMux is exposed with it.
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

// Start starts a profiling server on the given port. It returns immediately,
// serving in the background until Stop is called.
func Start(port string, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	mux.Handle("/", http.RedirectHandler("/debug/pprof/", http.StatusSeeOther))

	server := &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort("", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}

	spawn := panics.GoroutineWrapperFunc(log)
	spawn("profiling.Start", func() {
		log.Infof("Profile server listening on %s", server.httpServer.Addr)
		err := server.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Profile server stopped: %s", err)
		}
	})
	return server
}

// Stop shuts the profiling server down.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.log.Warnf("Couldn't stop the profile server gracefully: %s", err)
	}
}
