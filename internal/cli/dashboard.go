package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/tui"
)

// ErrNoTerminal is returned when the dashboard is started without a TTY.
var ErrNoTerminal = errors.New("the dashboard needs an interactive terminal; use `carbontrace stages` instead")

// NewDashboardCmd creates the interactive dashboard command.
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [product]",
		Short: "Interactive emissions dashboard",
		Long: `Opens a full-screen dashboard with the stage breakdown, the product
comparison and the reduction alerts. Keys:
  tab / 1-3     switch pane
  left / right  switch product
  enter         stage details (stages pane)
  esc           back
  q             quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tui.IsTTY() {
				return ErrNoTerminal
			}

			ctx := cmd.Context()
			app := appFrom(cmd)
			cat, err := app.Catalog(ctx)
			if err != nil {
				return err
			}
			product, err := app.Product(ctx, args)
			if err != nil {
				return err
			}

			model, err := tui.NewDashboardModel(ctx, cat, app.Config.Classification, product.Name)
			if err != nil {
				return err
			}
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run dashboard: %w", err)
			}
			return nil
		},
	}
}
