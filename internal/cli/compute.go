package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newComputeCmd() *cobra.Command {
	var (
		shape  shapeFlags
		render renderOptions
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute surface area and edge length for one strip",
		Example: "  mobius compute --radius 2 --width 0.5 --resolution 400\n" +
			"  mobius compute --preset Classic --render png --plot strip.png",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg, rule, err := shape.resolve(cmd, cliCtx)
			if err != nil {
				return err
			}
			strip, err := newStrip(cliCtx, cfg, rule)
			if err != nil {
				return err
			}

			summary := strip.Summary()
			if asJSON {
				if err := printJSON(cmd, summary); err != nil {
					return err
				}
			} else {
				printQuantities(cmd, summary)
				fmt.Fprintf(cmd.OutOrStdout(), "Quadrature: %s\n", summary.Quadrature)
				if summary.Degenerate {
					fmt.Fprintln(cmd.OutOrStdout(), "Warning: grid too small for Simpson's rule, trapezoidal rule applied")
				}
			}
			return render.run(cliCtx, strip)
		},
	}

	shape.bind(cmd)
	render.bind(cmd, "none")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	return cmd
}
