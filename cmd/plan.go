package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/plandoc"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
	"github.com/abhisek/leetplan/internal/workspace"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate today's plan document",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(paths.Base)
		if err != nil {
			return err
		}
		return runPlan(paths, settings, dateutil.SystemClock{})
	},
}

func runPlan(paths config.Paths, settings config.Settings, clock dateutil.Clock) error {
	st, err := state.NewStore(paths.StateFile).Load()
	if err != nil {
		return err
	}
	if st == nil {
		ui.Errorf("No plan initialized. Run 'init' first.")
		return errors.New("no plan initialized")
	}

	if err := workspace.Clean(paths.Workspace); err != nil {
		return err
	}
	fmt.Printf("Cleaned workspace: '%s'\n", paths.Workspace)

	today := clock.Today()
	lists := plandoc.SelectDue(st, today)

	var overdueFocus []plandoc.OverdueItem
	if len(lists.Overdue) > 0 {
		count, err := promptOverdueFocus(len(lists.Overdue), settings.OverdueFocus)
		if err != nil {
			return err
		}
		overdueFocus = lists.Overdue[:count]
	}

	doc := plandoc.BuildDaily(today, lists.NewToday, overdueFocus, lists.RepsToday,
		plandoc.ParseRichness(st.RichContentLevel))

	planPath := paths.DailyPlanFile(today)
	if err := os.WriteFile(planPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	ui.Successf("Today's plan created at: '%s'", planPath)
	return nil
}

// promptOverdueFocus asks how many of the oldest overdue items to fold
// into today's plan.
func promptOverdueFocus(total, defaultCount int) (int, error) {
	ui.Warnf("You have %d overdue items.", total)

	if defaultCount > total {
		defaultCount = total
	}
	text := strconv.Itoa(defaultCount)
	input := huh.NewInput().
		Title(fmt.Sprintf("How many of the oldest ones would you like to focus on today? (0-%d)", total)).
		Value(&text).
		Validate(func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 0 || n > total {
				return fmt.Errorf("enter a number between 0 and %d", total)
			}
			return nil
		})
	if err := input.Run(); err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(strings.TrimSpace(text))
	return n, nil
}
