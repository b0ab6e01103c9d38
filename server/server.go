// Package server exposes field, byte and character extraction over HTTP.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// NewRouter returns the router with all routes and request logging.
func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(LoggingMiddleware)
	NewHandler().RegisterRoutes(router)
	return router
}

// New returns an HTTP server listening on addr.
func New(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func Run(ctx context.Context, addr string) error {
	srv := New(addr)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
