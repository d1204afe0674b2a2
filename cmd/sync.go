package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dashboard"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/syncer"
	"github.com/abhisek/leetplan/internal/ui"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync progress from edited plan documents",
	Long: "Parses every daily plan document, records checked-off problems, applies\n" +
		"the adaptive repetition schedule, and regenerates the dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		return runSync(paths)
	},
}

func runSync(paths config.Paths) error {
	engine := newEngine(paths)
	_, err := engine.Run()
	if errors.Is(err, syncer.ErrNoState) {
		ui.Errorf("No plan initialized. Run 'init' first.")
		return err
	}
	if errors.Is(err, state.ErrCorruptState) {
		ui.Errorf("State file is corrupt: %v", err)
		ui.Errorf("Restore state.json from archive/ or run 'init' to start over.")
		return err
	}
	return err
}

func newEngine(paths config.Paths) *syncer.Engine {
	return &syncer.Engine{
		Paths:    paths,
		Store:    state.NewStore(paths.StateFile),
		Clock:    dateutil.SystemClock{},
		Renderer: dashboard.Renderer{Paths: paths},
		Out:      os.Stdout,
	}
}
