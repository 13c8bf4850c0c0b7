package main

import (
	"errors"
	"fmt"

	"github.com/Avi18971911/diagviewer/internal/db/elasticsearch/client"
	"github.com/Avi18971911/diagviewer/internal/diag/capture"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func captureCmd() *cobra.Command {
	var (
		outDir    string
		addresses []string
		username  string
		password  string
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Capture a diagnostic bundle from a live cluster",
		Long:  `Fetch the shards, allocation, nodes, cluster state and indices stats documents from a running cluster into a bundle directory.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if outDir == "" {
				return errors.New("--out is required")
			}
			if cmd.Flags().Changed("es-address") {
				cfg.Elasticsearch.Addresses = addresses
			}
			if cmd.Flags().Changed("username") {
				cfg.Elasticsearch.Username = username
			}
			if cmd.Flags().Changed("password") {
				cfg.Elasticsearch.Password = password
			}

			es, err := elasticsearch.NewClient(elasticsearch.Config{
				Addresses: cfg.Elasticsearch.Addresses,
				Username:  cfg.Elasticsearch.Username,
				Password:  cfg.Elasticsearch.Password,
			})
			if err != nil {
				return fmt.Errorf("failed to create elasticsearch client: %w", err)
			}

			cs := capture.NewCaptureService(
				client.NewDiagnosticsClientImpl(es),
				afero.NewOsFs(),
				cfg.Elasticsearch.Timeout,
				logger,
			)
			bundle, err := cs.Capture(cmd.Context(), outDir)
			if err != nil {
				return err
			}
			logger.Info(
				"Captured diagnostic bundle",
				zap.String("dir", outDir),
				zap.String("cluster", bundle.ClusterName()),
				zap.Int("shards", len(bundle.Shards)),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "bundle directory to write")
	cmd.Flags().StringSliceVar(&addresses, "es-address", nil, "elasticsearch address, repeatable")
	cmd.Flags().StringVar(&username, "username", "", "basic auth username")
	cmd.Flags().StringVar(&password, "password", "", "basic auth password")

	return cmd
}
