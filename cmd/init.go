package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dashboard"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/plandoc"
	"github.com/abhisek/leetplan/internal/planlist"
	"github.com/abhisek/leetplan/internal/schedule"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new study plan interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := resolvePaths(cmd)
		if err != nil {
			return err
		}
		settings, err := config.LoadSettings(paths.Base)
		if err != nil {
			return err
		}
		return runInit(paths, settings)
	},
}

func runInit(paths config.Paths, settings config.Settings) error {
	store := state.NewStore(paths.StateFile)
	if store.Exists() {
		var overwrite bool
		confirm := huh.NewConfirm().
			Title("A state.json file already exists. Continuing will overwrite it. Are you sure?").
			Value(&overwrite)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !overwrite {
			return errors.New("aborted")
		}
	}

	available, err := planlist.Available(paths.ProblemLists)
	if err != nil {
		return err
	}
	if len(available) == 0 {
		ui.Errorf("No problem lists found in '%s'. Please add JSON files for plans.", paths.ProblemLists)
		return errors.New("no problem lists available")
	}

	var (
		planFile  string
		startText string
		rateText  = strconv.Itoa(settings.ProblemsPerDay)
		richness  = string(plandoc.ParseRichness(settings.Richness))
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a plan").
				Options(huh.NewOptions(available...)...).
				Value(&planFile),
			huh.NewInput().
				Title("Start date").
				Description("YYYY-MM-DD or e.g. 'next monday'; leave blank for today").
				Value(&startText),
			huh.NewInput().
				Title("How many new problems per day?").
				Value(&rateText).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Content richness level").
				Options(
					huh.NewOption("Minimal: problem and solution links, notes, manual time tracking", "minimal"),
					huh.NewOption("Spoilers: adds collapsible hints and full solution spoilers", "spoilers"),
					huh.NewOption("Video Link: adds a link to the video walkthrough", "video_link"),
					huh.NewOption("Video Embed: embeds the video directly in the plan file", "video_embed"),
				).
				Value(&richness),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	startDate, err := dateutil.ParseInput(startText, time.Now())
	if err != nil {
		ui.Errorf("%v", err)
		return err
	}
	perDay, _ := strconv.Atoi(strings.TrimSpace(rateText))

	list, err := planlist.Load(paths.ProblemLists, planFile)
	if err != nil {
		ui.Errorf("%v", err)
		return err
	}

	st := buildInitialState(list, planFile, richness)
	if err := schedule.Spread(st.Problems, startDate, perDay); err != nil {
		return err
	}
	if err := store.Save(st); err != nil {
		return err
	}
	if err := (dashboard.Renderer{Paths: paths}).Render(st); err != nil {
		return err
	}

	ui.Successf("Successfully initialized '%s' plan with '%s' content level!", list.Name, richness)
	fmt.Println("Run 'leetplan plan' to generate your first daily plan.")
	return nil
}

// buildInitialState turns a plan list into a fresh tracking state:
// every problem pending, empty history, repetition level zero.
func buildInitialState(list *planlist.List, planFile, richness string) *state.State {
	st := &state.State{
		PlanName:         list.Name,
		PlanFile:         planFile,
		RichContentLevel: richness,
	}
	for _, cat := range list.Categories {
		for _, tmpl := range cat.Problems {
			st.Problems = append(st.Problems, &state.Problem{
				ID:                tmpl.ID,
				Title:             tmpl.Title,
				Category:          cat.Name,
				Status:            state.StatusPending,
				RepetitionLevel:   0,
				CompletionHistory: []state.CompletionEntry{},
				LeetcodeURL:       tmpl.LeetcodeURL,
				SolutionLink:      tmpl.SolutionLink,
				Hints:             tmpl.Hints,
				Solution:          tmpl.Solution,
				YoutubeID:         tmpl.YoutubeID,
			})
		}
	}
	return st
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a positive number")
	}
	return nil
}
