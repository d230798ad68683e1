package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chandramohan-1/mobius-strip/internal/model"
	"github.com/chandramohan-1/mobius-strip/internal/project"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Manage named shape presets",
	}
	cmd.AddCommand(
		newPresetListCmd(),
		newPresetShowCmd(),
		newPresetSaveCmd(),
		newPresetDeleteCmd(),
	)
	return cmd
}

func loadPresetStore(cmd *cobra.Command) (*CLIContext, model.PresetStore, error) {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return nil, model.PresetStore{}, err
	}
	store, err := project.LoadPresets(cliCtx.PresetPath())
	if err != nil {
		return nil, model.PresetStore{}, fmt.Errorf("failed to load presets: %w", err)
	}
	return cliCtx, store, nil
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadPresetStore(cmd)
			if err != nil {
				return err
			}
			rows := make([][]string, len(store.Presets))
			for i, p := range store.Presets {
				rows[i] = []string{
					p.Name,
					fmt.Sprintf("%g", p.Shape.Radius),
					fmt.Sprintf("%g", p.Shape.Width),
					fmt.Sprintf("%d", p.Shape.Resolution),
					p.Description,
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), FormatTable([]string{"NAME", "R", "W", "N", "DESCRIPTION"}, rows))
			return nil
		},
	}
}

func newPresetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print one preset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadPresetStore(cmd)
			if err != nil {
				return err
			}
			p := store.Find(args[0])
			if p == nil {
				return fmt.Errorf("preset %q not found", args[0])
			}
			return printJSON(cmd, p)
		},
	}
}

func newPresetSaveCmd() *cobra.Command {
	var (
		shape       shapeFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a shape under a name, replacing any preset with that name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, store, err := loadPresetStore(cmd)
			if err != nil {
				return err
			}
			cfg, _, err := shape.resolve(cmd, cliCtx)
			if err != nil {
				return err
			}
			store.Add(model.NewShapePreset(args[0], description, cfg))
			if err := project.SavePresets(cliCtx.PresetPath(), store); err != nil {
				return fmt.Errorf("failed to save presets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q (%s)\n", args[0], cfg)
			return nil
		},
	}

	shape.bind(cmd)
	cmd.Flags().StringVarP(&description, "description", "d", "", "free-form description")
	return cmd
}

func newPresetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a preset by name or ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, store, err := loadPresetStore(cmd)
			if err != nil {
				return err
			}
			if !store.Remove(args[0]) {
				return fmt.Errorf("preset %q not found", args[0])
			}
			if err := project.SavePresets(cliCtx.PresetPath(), store); err != nil {
				return fmt.Errorf("failed to save presets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
			return nil
		},
	}
}
