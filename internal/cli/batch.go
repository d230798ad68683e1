package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/importer"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

func newBatchCmd() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "batch <file.csv|file.xlsx>",
		Short: "Compute every shape listed in a CSV or Excel file",
		Long: "batch imports shapes from a CSV or xlsx file with columns Label, Radius, Width,\n" +
			"Resolution and optionally Quadrature, then computes each one. Rows that fail to\n" +
			"parse or validate are reported and skipped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			result := importer.ImportFile(args[0])
			for _, w := range result.Warnings {
				cliCtx.Logger.Warn(w, logging.String("file", args[0]))
			}
			for _, e := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "Skipped: %s\n", e)
			}
			if len(result.Shapes) == 0 {
				return fmt.Errorf("no valid shapes in %s", args[0])
			}

			summaries, err := computeBatch(cmd, cliCtx, result.Shapes)
			if err != nil {
				return err
			}

			rows := make([][]string, len(summaries))
			for i, s := range summaries {
				rows[i] = []string{
					result.Shapes[i].Label,
					fmt.Sprintf("%g", s.Shape.Radius),
					fmt.Sprintf("%g", s.Shape.Width),
					fmt.Sprintf("%d", s.Shape.Resolution),
					fmt.Sprintf("%.4f", s.SurfaceArea),
					fmt.Sprintf("%.4f", s.EdgeLength),
					string(s.Quadrature),
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatTable(
				[]string{"LABEL", "R", "W", "N", "AREA", "LENGTH", "RULE"}, rows))

			if xlsxPath != "" {
				if err := export.ExportSummariesExcel(xlsxPath, summaries); err != nil {
					return err
				}
				cliCtx.Logger.Info("batch results exported", logging.String("path", xlsxPath))
			}
			if len(result.Errors) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d rows skipped\n",
					len(result.Errors), len(result.Errors)+len(result.Shapes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the results to an xlsx workbook")
	return cmd
}

// computeBatch evaluates every row on a bounded worker pool. Summaries come
// back in input order.
func computeBatch(cmd *cobra.Command, cliCtx *CLIContext, shapes []importer.ShapeRow) ([]model.GeometricSummary, error) {
	summaries := make([]model.GeometricSummary, len(shapes))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.NumCPU())
	for i, row := range shapes {
		i, row := i, row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			strip, err := newStrip(cliCtx, row.Shape, row.Quadrature)
			if err != nil {
				return fmt.Errorf("%s: %w", strings.TrimSpace(row.Label), err)
			}
			summaries[i] = strip.Summary()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
