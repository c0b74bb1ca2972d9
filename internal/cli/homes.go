package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/pkg/store"
)

// homesCommand creates the homes command for listing stored layouts.
func (c *CLI) homesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homes",
		Short: "List homes with a stored layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHomes(cmd)
		},
	}
	return cmd
}

func (c *CLI) runHomes(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	return c.listHomes(ctx, st)
}

// listHomes prints every stored home with its widget and row counts. A home
// whose layout fails to load is reported and skipped so one corrupt entry
// does not hide the rest.
func (c *CLI) listHomes(ctx context.Context, st store.Store) error {
	homes, err := st.Homes(ctx)
	if err != nil {
		return err
	}
	if len(homes) == 0 {
		printInfo("No stored layouts")
		printDetail("Run: %s generate <home>", appName)
		return nil
	}

	fmt.Println(StyleTitle.Render("Homes"))
	for _, home := range homes {
		l, err := st.Layout(ctx, home)
		if err != nil {
			printError("Failed to load %q: %v", home, err)
			continue
		}
		fmt.Printf("  %s %s\n",
			StyleValue.Render(home),
			StyleDim.Render(fmt.Sprintf("(%d widgets, %d rows)", len(l.Widgets), l.Rows())))
	}
	return nil
}
