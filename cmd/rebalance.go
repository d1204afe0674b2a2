package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dashboard"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/schedule"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
)

var rebalanceCmd = &cobra.Command{
	Use:   "rebalance",
	Short: "Respread all pending problems from today",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(paths.Base)
		if err != nil {
			return err
		}
		return runRebalance(paths, settings, dateutil.SystemClock{})
	},
}

func runRebalance(paths config.Paths, settings config.Settings, clock dateutil.Clock) error {
	store := state.NewStore(paths.StateFile)
	st, err := store.Load()
	if err != nil {
		return err
	}
	if st == nil {
		ui.Errorf("No plan found to rebalance. Run 'init' first.")
		return errors.New("no plan initialized")
	}

	pending := st.Pending()
	if len(pending) == 0 {
		ui.Successf("No pending problems to rebalance.")
		return nil
	}

	fmt.Printf("You have %d pending problems.\n", len(pending))
	rateText := strconv.Itoa(settings.ProblemsPerDay)
	input := huh.NewInput().
		Title("How many problems per day would you like to schedule going forward?").
		Value(&rateText).
		Validate(validatePositiveInt)
	if err := input.Run(); err != nil {
		return err
	}
	rate, _ := strconv.Atoi(strings.TrimSpace(rateText))

	// Rebalance only moves scheduled dates of pending work; completed
	// problems and their review dates are untouched.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ScheduledDate < pending[j].ScheduledDate
	})
	if err := schedule.Spread(pending, clock.Today(), rate); err != nil {
		return err
	}
	if err := store.Save(st); err != nil {
		return err
	}
	if err := (dashboard.Renderer{Paths: paths}).Render(st); err != nil {
		return err
	}
	ui.Successf("Successfully rebalanced %d pending problems at a new rate of %d per day.", len(pending), rate)
	return nil
}
