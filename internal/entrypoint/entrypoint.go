package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"go.uber.org/zap"

	"github.com/mrlokans/lifebook/internal/config"
)

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then shuts
// every service down.
func Run(cfg *config.Config, version string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	injector := NewContainer(cfg, version)
	log, err := do.Invoke[*zap.Logger](injector)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting lifebook",
		zap.String("version", version),
		zap.String("config_dir", cfg.Paths.ConfigDir),
		zap.Bool("demo_mode", cfg.Demo.Enabled),
	)

	server, err := do.Invoke[*ServerHandle](injector)
	if err != nil {
		shutdownContainer(context.Background(), injector, log)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, server, func(shutdownCtx context.Context) {
		shutdownContainer(shutdownCtx, injector, log)
	}, log)
}

// Serve runs server until ctx is cancelled or the listener fails. onShutdown
// receives a context bounded by the server's shutdown timeout.
func Serve(ctx context.Context, server *ServerHandle, onShutdown func(context.Context), log *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("Shutdown server", zap.Duration("timeout", server.ShutdownTimeout))
	case serveErr = <-errCh:
		if serveErr != nil {
			log.Error("Server stopped", zap.Error(serveErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	onShutdown(shutdownCtx)

	log.Info("Server exiting")
	if serveErr != nil {
		return fmt.Errorf("listen: %w", serveErr)
	}
	return nil
}

func shutdownContainer(ctx context.Context, injector *do.RootScope, log *zap.Logger) {
	if report := injector.ShutdownWithContext(ctx); !report.Succeed {
		log.Error("Shutdown error", zap.Error(report))
	}
}
