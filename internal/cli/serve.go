package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/tracery"
	httpAdapter "github.com/aretw0/tracery/pkg/adapters/http"
	promAdapter "github.com/aretw0/tracery/pkg/adapters/prometheus"
	"github.com/aretw0/tracery/pkg/event"
)

// ServeOptions contains the configuration for the serve command.
type ServeOptions struct {
	LibraryPath string
	Port        string
	MaxDepth    int
	Logger      *slog.Logger
}

// RunServe starts the HTTP server and blocks until a signal or listener
// error.
func RunServe(opts ServeOptions) error {
	lib, _, err := LoadLibrary(opts.LibraryPath, "")
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := promAdapter.NewMetrics(registry)

	explorer := tracery.New(
		tracery.WithLogger[event.Name](opts.Logger),
		tracery.WithMaxDepth[event.Name](opts.MaxDepth),
		tracery.WithHooks(promAdapter.Hooks[event.Name](metrics)),
	)

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Mount("/", httpAdapter.NewHandler(lib, explorer, opts.Logger))

	srv := &http.Server{
		Addr:    ":" + opts.Port,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		opts.Logger.Info("starting server", "addr", srv.Addr, "library", opts.LibraryPath)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		opts.Logger.Info("starting shutdown", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			opts.Logger.Warn("graceful shutdown did not complete", "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("could not stop server: %w", err)
			}
		}
	}
	return nil
}
