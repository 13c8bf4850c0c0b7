package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Avi18971911/diagviewer/internal/diag/loader"
	"github.com/Avi18971911/diagviewer/internal/pipeline/diskmap/service"
	"github.com/Avi18971911/diagviewer/internal/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	formatHTML    = "html"
	formatJSON    = "json"
	formatSummary = "summary"
)

func renderCmd() *cobra.Command {
	var (
		format  string
		outPath string
		width   float64
		height  float64
		padding float64
	)

	cmd := &cobra.Command{
		Use:   "render <bundle-dir>",
		Short: "Render the disk map of a bundle",
		Long:  `Load a diagnostic bundle directory and write its disk map as an HTML board, JSON layout or terminal summary.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()
			applyLayoutFlags(cmd, cfg, width, height, padding)

			switch format {
			case formatHTML, formatJSON, formatSummary:
			default:
				return fmt.Errorf("unknown format %q (expected html, json or summary)", format)
			}

			fs := afero.NewOsFs()
			bundle, err := loader.NewLoader(afero.NewReadOnlyFs(fs), logger).Load(args[0])
			if err != nil {
				return err
			}

			dms := service.NewDefaultDiskMapService(logger)
			var out io.Writer = os.Stdout
			if outPath != "" {
				f, err := fs.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if format == formatSummary {
				cluster, err := dms.BuildTree(bundle)
				if err != nil {
					return err
				}
				return render.Summary(out, cluster)
			}

			result, cluster, err := dms.Render(bundle, cfg.Layout.Options())
			if err != nil {
				return err
			}
			if format == formatJSON {
				err = render.JSON(out, result)
			} else {
				err = render.HTML(out, cluster, result)
			}
			if err != nil {
				return err
			}
			if outPath != "" {
				logger.Info("Wrote disk map", zap.String("path", outPath), zap.String("format", format))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatHTML, "output format: html, json or summary")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, stdout when empty")
	bindLayoutFlags(cmd, &width, &height, &padding)

	return cmd
}
