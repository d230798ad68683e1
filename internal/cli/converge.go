package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/logging"
)

func newConvergeCmd() *cobra.Command {
	var (
		shape       shapeFlags
		resolutions []int
		xlsxPath    string
	)

	cmd := &cobra.Command{
		Use:   "converge",
		Short: "Run a convergence study over several resolutions",
		Long: "converge evaluates the same shape at each resolution and reports how much the\n" +
			"surface area and edge length change between consecutive resolutions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			base, rule, err := shape.resolve(cmd, cliCtx)
			if err != nil {
				return err
			}

			results, err := engine.Converge(cmd.Context(), base, resolutions, engineOptions(cliCtx, rule)...)
			if err != nil {
				return err
			}

			rows := make([][]string, len(results))
			for i, r := range results {
				rows[i] = []string{
					fmt.Sprintf("%d", r.Shape.Resolution),
					fmt.Sprintf("%.6f", r.SurfaceArea),
					fmt.Sprintf("%.2e", r.AreaDelta),
					fmt.Sprintf("%.6f", r.EdgeLength),
					fmt.Sprintf("%.2e", r.LengthDelta),
					string(r.Rule),
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatTable(
				[]string{"N", "AREA", "AREA DELTA", "LENGTH", "LENGTH DELTA", "RULE"}, rows))

			if xlsxPath != "" {
				if err := export.ExportConvergenceExcel(xlsxPath, results); err != nil {
					return err
				}
				cliCtx.Logger.Info("convergence study exported", logging.String("path", xlsxPath))
			}
			return nil
		},
	}

	shape.bind(cmd)
	cmd.Flags().IntSliceVar(&resolutions, "resolutions", engine.DefaultResolutions, "sample counts to evaluate, coarse to fine")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the study to an xlsx workbook")
	return cmd
}
