package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greyvale/sheet-api/internal/clients/catalog"
	"github.com/greyvale/sheet-api/internal/config"
	"github.com/greyvale/sheet-api/internal/handlers/httpapi"
	sheetorch "github.com/greyvale/sheet-api/internal/orchestrators/sheet"
	"github.com/greyvale/sheet-api/internal/pkg/clock"
	"github.com/greyvale/sheet-api/internal/pkg/idgen"
	internalredis "github.com/greyvale/sheet-api/internal/redis"
	sheetrepo "github.com/greyvale/sheet-api/internal/repositories/sheet"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the sheet API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := internalredis.NewClient(cfg.RedisEndpoint, &internalredis.Options{
		UseTLS: cfg.RedisUseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{
		Client: redisClient,
		Clock:  clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet repository: %w", err)
	}

	catalogClient, err := catalog.NewRedis(&catalog.RedisConfig{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	orchestrator, err := sheetorch.New(&sheetorch.Config{
		SheetRepo:      repo,
		Catalog:        catalogClient,
		IDGenerator:    idgen.NewUUID("sheet"),
		ConsumeOnEquip: cfg.ConsumeOnEquip,
	})
	if err != nil {
		return fmt.Errorf("failed to create sheet orchestrator: %w", err)
	}

	handler, err := httpapi.New(&httpapi.Config{
		SheetService: orchestrator,
	})
	if err != nil {
		return fmt.Errorf("failed to create HTTP handler: %w", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: handler.Routes(),
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, closing", "error", err)
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
