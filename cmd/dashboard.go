package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/dashboard"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Regenerate the dashboard from current state",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		st, err := state.NewStore(paths.StateFile).Load()
		if err != nil {
			return err
		}
		if st == nil {
			ui.Errorf("No plan initialized. Run 'init' first.")
			return errors.New("no plan initialized")
		}
		return dashboard.Renderer{Paths: paths}.Render(st)
	},
}
