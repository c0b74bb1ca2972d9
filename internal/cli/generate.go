package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/pkg/grid"
	"github.com/matzehuels/homedeck/pkg/service"
)

// generateCommand creates the generate command for building default layouts.
func (c *CLI) generateCommand() *cobra.Command {
	var auto bool
	var force bool

	cmd := &cobra.Command{
		Use:   "generate <home>",
		Short: "Build a default layout from the configured services",
		Long: `Build a default layout for a home from the configured services.

By default every service gets a small widget with a minimal metric set,
packed in configuration order. With --auto each widget gets the size and
metrics considered optimal for its service kind, packed with the smart
strategy.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], auto, force)
		},
	}

	cmd.Flags().BoolVar(&auto, "auto", false, "use per-kind optimal sizes and metrics")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing layout")
	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, home string, auto, force bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	if !force {
		existing, err := st.Layout(ctx, home)
		if err != nil {
			return err
		}
		if len(existing.Widgets) > 0 {
			printWarning("Home %q already has a layout (%d widgets)", home, len(existing.Widgets))
			printDetail("Re-run with --force to overwrite")
			return nil
		}
	}

	services := service.ForHome(cfg.Services, home)
	if len(services) == 0 {
		printWarning("No services configured for home %q", home)
		printDetail("Add [[service]] blocks with home = %q to the config", home)
		return nil
	}

	var l grid.Layout
	if auto {
		l = grid.GenerateAutoLayout(home, services)
	} else {
		l = grid.GenerateLayout(home, services)
	}
	if err := st.SetLayout(ctx, l); err != nil {
		return err
	}

	printSuccess("Generated layout for %q from %d services", home, len(services))
	fmt.Println()
	fmt.Println(renderGrid(l, cfg.Services))
	return nil
}
