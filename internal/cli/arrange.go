package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/grid"
	"github.com/matzehuels/homedeck/pkg/service"
)

// arrangeCommand creates the arrange command for re-packing a stored layout.
func (c *CLI) arrangeCommand() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "arrange <home>",
		Short: "Re-pack a home's layout with a packing strategy",
		Long: `Re-pack a home's layout with a packing strategy.

Strategies:
  smart       resolve auto sizes, sort multi-column widgets first and pair
              single-column widgets side by side (default)
  flexible    resolve auto sizes, then place in widget order
  sequential  place in widget order without resolving auto sizes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runArrange(cmd.Context(), args[0], strategy)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "smart", "packing strategy (smart, flexible, sequential)")
	return cmd
}

func (c *CLI) runArrange(ctx context.Context, home, strategy string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	l, err := st.Layout(ctx, home)
	if err != nil {
		return err
	}
	if len(l.Widgets) == 0 {
		printWarning("Home %q has no widgets", home)
		return nil
	}

	arranged, err := arrangeWithStrategy(l, strategy, cfg.Services)
	if err != nil {
		return err
	}
	if err := st.SetLayout(ctx, arranged); err != nil {
		return err
	}

	printSuccess("Arranged %q with the %s strategy", home, strategy)
	printDetail("%d widgets on %d rows", len(arranged.Widgets), arranged.Rows())
	fmt.Println()
	fmt.Println(renderGrid(arranged, cfg.Services))
	return nil
}

// arrangeWithStrategy applies the named packing strategy to a layout.
func arrangeWithStrategy(l grid.Layout, strategy string, services []service.Service) (grid.Layout, error) {
	switch strategy {
	case "smart":
		return grid.ApplyAutoLayout(l, services), nil
	case "flexible":
		return grid.ArrangeFlexible(l), nil
	case "sequential":
		return grid.ArrangeSequential(l), nil
	default:
		return grid.Layout{}, errors.New(errors.ErrCodeInvalidStrategy, "unknown strategy %q (want smart, flexible, or sequential)", strategy)
	}
}
