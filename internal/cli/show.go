package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/homedeck/pkg/errors"
	"github.com/matzehuels/homedeck/pkg/store"
)

// showCommand creates the show command for rendering a layout in the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [home]",
		Short: "Render a home's widget grid in the terminal",
		Long: `Render a home's widget grid in the terminal.

Without an argument an interactive picker lists the stored homes. With
--json the raw layout is printed instead of the grid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			home := ""
			if len(args) > 0 {
				home = args[0]
			}
			return c.runShow(cmd.Context(), home, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	return cmd
}

func (c *CLI) runShow(ctx context.Context, home string, asJSON bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	st, err := c.newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	if home == "" {
		home, err = c.pickHome(ctx, st)
		if err != nil {
			return err
		}
		if home == "" {
			return nil // user quit the picker
		}
	}

	l, err := st.Layout(ctx, home)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(l)
	}

	fmt.Println(StyleTitle.Render(home))
	printDetail("%d widgets, %d rows", len(l.Widgets), l.Rows())
	fmt.Println()
	fmt.Println(renderGrid(l, cfg.Services))
	return nil
}

// pickHome runs the interactive home picker. Returns "" when the user quits
// without selecting.
func (c *CLI) pickHome(ctx context.Context, st store.Store) (string, error) {
	homes, err := st.Homes(ctx)
	if err != nil {
		return "", err
	}
	if len(homes) == 0 {
		return "", errors.New(errors.ErrCodeHomeNotFound, "no stored layouts to show")
	}
	if len(homes) == 1 {
		return homes[0], nil
	}

	entries := make([]homeEntry, len(homes))
	for i, home := range homes {
		l, err := st.Layout(ctx, home)
		if err != nil {
			return "", err
		}
		entries[i] = homeEntry{Name: home, Widgets: len(l.Widgets), Rows: l.Rows()}
	}

	model := NewHomeListModel(entries)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "home picker failed")
	}

	m, ok := final.(HomeListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Name, nil
}
