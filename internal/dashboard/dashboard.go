// Package dashboard renders the progress overview document from the
// current state and the originating plan list.
package dashboard

import (
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/planlist"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/ui"
)

// Renderer writes dashboard.md for a journey directory.
type Renderer struct {
	Paths config.Paths
}

// Render regenerates the dashboard from st. A missing plan-list file
// skips rendering with a warning; the state itself is untouched either
// way.
func (r Renderer) Render(st *state.State) error {
	if st == nil {
		return nil
	}
	listName := st.PlanFile
	if listName == "" {
		listName = strings.ReplaceAll(st.PlanName, " ", "")
	}
	list, err := planlist.Load(r.Paths.ProblemLists, listName)
	if err != nil {
		ui.Warnf("Dashboard generation skipped: %v", err)
		return nil
	}

	content := Build(st, list)
	if err := os.WriteFile(r.Paths.Dashboard, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write dashboard: %w", err)
	}
	ui.Successf("Dashboard updated successfully!")
	return nil
}

// Build renders the dashboard markdown for st against the plan list's
// category layout.
func Build(st *state.State, list *planlist.List) string {
	total := len(st.Problems)
	completed := len(st.Completed())
	percent := 0.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}

	content := []string{
		fmt.Sprintf("# LeetCode Journey: %s Dashboard\n", st.PlanName),
		fmt.Sprintf("**Overall Progress: %d / %d (%.1f%%)**\n", completed, total, percent),
		"---\n",
	}

	for _, cat := range list.Categories {
		completedInCat := 0
		for _, tmpl := range cat.Problems {
			if p := st.Lookup(tmpl.ID); p != nil && p.Status == state.StatusCompleted {
				completedInCat++
			}
		}
		content = append(content, fmt.Sprintf("### %s (%d / %d)\n", cat.Name, completedInCat, len(cat.Problems)))

		for _, tmpl := range cat.Problems {
			p := st.Lookup(tmpl.ID)
			if p == nil {
				continue
			}
			content = append(content, problemLine(p))
			if p.Status == state.StatusCompleted {
				for i, entry := range p.CompletionHistory {
					content = append(content, attemptLine(i+1, entry))
				}
			}
		}
		content = append(content, "\n---\n")
	}
	return strings.Join(content, "\n")
}

func problemLine(p *state.Problem) string {
	checkbox := "[ ]"
	if p.Status == state.StatusCompleted {
		checkbox = "[x]"
	}
	repeat := ""
	if p.NextRepetitionDate != nil {
		repeat = fmt.Sprintf(" (Next Repeat: %s)", *p.NextRepetitionDate)
	}
	return fmt.Sprintf("- %s %d\\. %s%s", checkbox, p.ID, p.Title, repeat)
}

func attemptLine(n int, entry state.CompletionEntry) string {
	notes := strings.TrimSpace(entry.Notes)
	if notes == "" {
		notes = "No notes provided."
	}
	timePart := ""
	if entry.TimeTaken != "" {
		timePart = fmt.Sprintf(", Time: %s", entry.TimeTaken)
	}
	return fmt.Sprintf("  - **Attempt %d (%s%s - Rating: %d):** %s", n, entry.Date, timePart, entry.Rating, notes)
}
