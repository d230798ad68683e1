package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
)

// exportFormats maps --format values to file extensions.
var exportFormats = map[string]string{
	"pdf":  ".pdf",
	"xlsx": ".xlsx",
	"dxf":  ".dxf",
	"png":  ".png",
}

func newExportCmd() *cobra.Command {
	var (
		shape       shapeFlags
		format      string
		out         string
		convergence bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export one strip as a PDF report, xlsx workbook, DXF wireframe or PNG",
		Example: "  mobius export --format pdf --out strip.pdf --convergence\n" +
			"  mobius export --format dxf --radius 2 --width 0.6",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			format = strings.ToLower(format)
			ext, ok := exportFormats[format]
			if !ok {
				return fmt.Errorf("unknown export format %q (want pdf, xlsx, dxf or png)", format)
			}
			if out == "" {
				out = filepath.Join(cliCtx.Config.OutputDir, "mobius_strip"+ext)
			}

			cfg, rule, err := shape.resolve(cmd, cliCtx)
			if err != nil {
				return err
			}
			strip, err := newStrip(cliCtx, cfg, rule)
			if err != nil {
				return err
			}

			report := export.Report{
				Summary: strip.Summary(),
				Points:  strip.Points(),
				Render:  cliCtx.Config.Render,
			}
			if convergence {
				report.Convergence, err = engine.Converge(cmd.Context(), cfg, engine.DefaultResolutions, engineOptions(cliCtx, rule)...)
				if err != nil {
					return err
				}
			}

			switch format {
			case "pdf":
				err = export.ExportPDF(out, report)
			case "xlsx":
				err = export.ExportExcel(out, report)
			case "dxf":
				err = export.ExportDXF(out, report.Points, report.Render)
			case "png":
				err = export.RenderPNG(out, report.Points, report.Render)
			}
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			cliCtx.Logger.Info("exported", logging.String("format", format), logging.String("path", out))
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", strings.ToUpper(format), out)

			cliCtx.Config.AddRecentExport(out)
			if err := cliCtx.SaveConfig(); err != nil {
				cliCtx.Logger.Warn("could not record recent export", logging.Err(err))
			}
			return nil
		},
	}

	shape.bind(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format (pdf, xlsx, dxf, png)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output path (default: <output_dir>/mobius_strip.<ext>)")
	cmd.Flags().BoolVar(&convergence, "convergence", false, "include a convergence study (pdf and xlsx)")
	return cmd
}
