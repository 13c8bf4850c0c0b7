package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Avi18971911/diagviewer/internal/cache"
	"github.com/Avi18971911/diagviewer/internal/diag/loader"
	"github.com/Avi18971911/diagviewer/internal/pipeline/diskmap/service"
	"github.com/Avi18971911/diagviewer/internal/query_server/router"
	"github.com/Avi18971911/diagviewer/internal/query_server/service/diskmap"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <bundle-dir>",
		Short: "Serve the disk map of a bundle over HTTP",
		Long:  `Load a diagnostic bundle once and serve its board, layout and summary, computing each canvas size on demand.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			bundle, err := loader.NewLoader(afero.NewReadOnlyFs(afero.NewOsFs()), logger).Load(args[0])
			if err != nil {
				return err
			}

			layoutCache, err := cache.NewLayoutCache(cfg.Server.CacheEntries, logger)
			if err != nil {
				return err
			}
			defer layoutCache.Close()

			qs, err := diskmap.NewDiskMapQueryService(
				bundle,
				service.NewDefaultDiskMapService(logger),
				layoutCache,
				cfg.Layout.Options(),
				logger,
			)
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              cfg.Server.Addr,
				Handler:           router.CreateRouter(qs, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting query server", zap.String("addr", cfg.Server.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("failed to serve: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			logger.Info("Shutting down query server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("failed to shut down: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8081", "listen address")

	return cmd
}
