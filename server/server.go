// SPDX-License-Identifier: EPL-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"
	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/formats"
	"github.com/sirupsen/logrus"
)

const (
	apiVersion = "1.0"

	// DefaultMaxBodyBytes caps uploaded audio files.
	DefaultMaxBodyBytes = 64 << 20

	shutdownTimeout = 5 * time.Second
)

// Settings configure a Server.
type Settings struct {
	// Address to listen on, e.g. ":8080".
	Address string
	// MaxBodyBytes limits the request body; 0 means DefaultMaxBodyBytes.
	MaxBodyBytes int64
	// Registry defaults to formats.Default().
	Registry *audio.Registry
	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
}

// Server exposes waveform generation over HTTP.
type Server struct {
	address  string
	maxBody  int64
	registry *audio.Registry
	router   *mux.Router
	apiMatch *regexp.Regexp
	log      *logrus.Entry
}

// New returns a Server with its routes registered.
func New(s Settings) *Server {
	logger := s.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	maxBody := s.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}

	registry := s.Registry
	if registry == nil {
		registry = formats.Default()
	}

	srv := &Server{
		address:  s.Address,
		maxBody:  maxBody,
		registry: registry,
		router:   mux.NewRouter(),
		apiMatch: regexp.MustCompile(`api/v\d+\.\d+/`),
		log:      logger.WithField("component", "server"),
	}
	srv.routes()

	return srv
}

// Handler returns the router wrapped in the request middleware.
func (srv *Server) Handler() http.Handler {
	return srv.logRequests(srv.apiRedirectRouter(srv.router))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) ListenAndServe(ctx context.Context) error {
	hs := &http.Server{
		Addr:              srv.address,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.log.WithFields(logrus.Fields{
			"function": "ListenAndServe",
			"address":  srv.address,
		}).Info("Listening")
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", srv.address, err)

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := hs.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}
