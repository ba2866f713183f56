package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"hourglass/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the chi mux and the stdlib server around it
type Server struct {
	mux *chi.Mux
	srv *stdhttp.Server
}

// NewServer builds a server listening on addr, e.g. ":4000"
func NewServer(addr string) *Server {
	m := chi.NewRouter()
	return &Server{
		mux: m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns the mount seam over the root mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains for up to 10s
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.srv.Addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info().Msg("http shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
