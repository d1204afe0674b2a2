package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/plandoc"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add extra problems to today's plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		count, _ := cmd.Flags().GetInt("count")
		return runAdd(paths, count, dateutil.SystemClock{})
	},
}

func init() {
	addCmd.Flags().Int("count", 3, "Number of extra problems to add")
}

func runAdd(paths config.Paths, count int, clock dateutil.Clock) error {
	store := state.NewStore(paths.StateFile)
	st, err := store.Load()
	if err != nil {
		return err
	}
	today := clock.Today()
	planPath := paths.DailyPlanFile(today)
	if st == nil || !fileExists(planPath) {
		ui.Errorf("No plan for today. Run 'plan' first.")
		return errors.New("no plan for today")
	}

	var future []*state.Problem
	for _, p := range st.Pending() {
		if p.ScheduledDate > today {
			future = append(future, p)
		}
	}
	sort.SliceStable(future, func(i, j int) bool {
		return future[i].ScheduledDate < future[j].ScheduledDate
	})
	if len(future) > count {
		future = future[:count]
	}
	if len(future) == 0 {
		fmt.Println("No more pending problems left to add!")
		return nil
	}

	// Pull the chosen problems forward to today before rendering, so
	// the plan and the schedule agree.
	for _, p := range future {
		p.ScheduledDate = today
	}

	addendum := plandoc.BuildAddendum(future, plandoc.ParseRichness(st.RichContentLevel))
	f, err := os.OpenFile(planPath, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open plan: %w", err)
	}
	if _, err := f.WriteString(addendum); err != nil {
		f.Close()
		return fmt.Errorf("append to plan: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close plan: %w", err)
	}

	if err := store.Save(st); err != nil {
		return err
	}
	ui.Successf("Added %d extra problem(s) to today's plan.", len(future))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
