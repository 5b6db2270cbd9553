// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"todohub/internal/api/handlers"
	"todohub/internal/audit"
	"todohub/internal/httpserver"
	"todohub/internal/metrics"
	"todohub/internal/repository"
	"todohub/internal/services"
)

// openStore opens the pool, applies migrations when enabled and checks the schema.
func openStore(options *GlobalOptions) (*repository.Pool, error) {
	cfg := options.Conf
	logger := options.Logger

	pool, err := repository.OpenPool(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	// --- Conditional Auto-migrate on startup ---
	if cfg.IsAutoMigrate() {
		if err := repository.Migrate(pool.DB(), pool.Dialect(), "up", logger); err != nil {
			pool.Close()
			logger.Errorf("Failed to bootstrap database: %v", err)
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.AcquireTimeout)
	defer cancel()
	if err := repository.ValidateSchema(ctx, pool.DB()); err != nil {
		pool.Close()
		logger.Error("---------------------------------------------------------------")
		logger.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logger.Error("---------------------------------------------------------------")
		return nil, err
	}
	return pool, nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer(options *GlobalOptions, _ *ServeOptions) error {
	cfg := options.Conf
	logger := options.Logger

	pool, err := openStore(options)
	if err != nil {
		return err
	}
	defer pool.Close()

	collector, err := metrics.NewCollector(pool.DB().DB)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Service Initialization
	repo := repository.NewRepository(pool.Dialect(), logger, collector)
	infoService := services.NewInfoService(Version, options.StartTime, pool.DriverName())
	todoService := services.NewTodoService(pool, repo, logger, cfg.IsStrictValidation())
	healthService := services.NewHealthService(pool, cfg.ProbeInterval, logger)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled, logger)

	healthService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		infoService,
		todoService,
		healthService,
		loggerAuditor,
		cfg,
		logger,
	)

	r := httpserver.SetupRouter(h, collector, logger)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on %s (store: %s, max connections: %d)", serverAddr, pool.Dialect(), cfg.Database.MaxOpenConns)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-stop:
	case err := <-serveErr:
		if err != nil {
			healthService.Stop()
			logger.Errorf("Server failed to start: %v", err)
			return err
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	healthService.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logger.Info("Server exiting")
	return nil
}
