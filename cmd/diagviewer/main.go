package main

import (
	"fmt"
	"os"

	"github.com/Avi18971911/diagviewer/internal/config"
	"github.com/Avi18971911/diagviewer/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configFile string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diagviewer",
		Short: "Disk usage map of an Elasticsearch diagnostic bundle",
		Long: `Correlates the shard, statistics and allocation documents of a diagnostic bundle
and draws every shard copy and the free space of each node as a proportional treemap.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.AddCommand(
		renderCmd(),
		captureCmd(),
		serveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger every subcommand starts with.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := logging.NewLogger(cfg.Logging.Level, verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// bindLayoutFlags registers the canvas flags; changed flags override cfg in applyLayoutFlags.
func bindLayoutFlags(cmd *cobra.Command, width, height, padding *float64) {
	cmd.Flags().Float64Var(width, "width", 0, "canvas width in pixels")
	cmd.Flags().Float64Var(height, "height", 0, "canvas height in pixels")
	cmd.Flags().Float64Var(padding, "padding", 0, "padding between sibling rectangles")
}

func applyLayoutFlags(cmd *cobra.Command, cfg *config.Config, width, height, padding float64) {
	if cmd.Flags().Changed("width") {
		cfg.Layout.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Layout.Height = height
	}
	if cmd.Flags().Changed("padding") {
		cfg.Layout.Padding = padding
	}
}
