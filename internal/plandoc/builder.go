package plandoc

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abhisek/leetplan/internal/state"
)

// Richness controls how much support content a plan block carries.
type Richness string

const (
	RichnessMinimal    Richness = "minimal"
	RichnessSpoilers   Richness = "spoilers"
	RichnessVideoLink  Richness = "video_link"
	RichnessVideoEmbed Richness = "video_embed"
)

// ParseRichness maps a config string to a Richness, defaulting to
// minimal for anything unknown.
func ParseRichness(s string) Richness {
	switch Richness(s) {
	case RichnessSpoilers, RichnessVideoLink, RichnessVideoEmbed:
		return Richness(s)
	default:
		return RichnessMinimal
	}
}

// OverdueItem is a problem folded into today's plan past its due date.
type OverdueItem struct {
	Problem *state.Problem
	// IsRepetition distinguishes an overdue review from overdue new
	// work; it selects which date the overdue note shows.
	IsRepetition bool
}

// DueDate returns the date the item was originally due.
func (o OverdueItem) DueDate() string {
	if o.IsRepetition && o.Problem.NextRepetitionDate != nil {
		return *o.Problem.NextRepetitionDate
	}
	return o.Problem.ScheduledDate
}

var legend = []string{
	"### Rating Legend",
	"- **4: Again** - I was lost and need to review this tomorrow.",
	"- **3: Hard** - I needed hints or the solution to complete it.",
	"- **2: Medium** - I got the solution, but it took some time or had bugs.",
	"- **1: Easy** - I solved it quickly and feel confident.",
	"- **0: Mastered** - This is trivial; do not schedule for repetition.",
}

// BuildDaily renders today's plan document.
func BuildDaily(today string, newTasks []*state.Problem, overdue []OverdueItem, reps []*state.Problem, level Richness) string {
	content := []string{fmt.Sprintf("# LeetCode Plan for: %s\n", today)}
	content = append(content, legend...)

	if len(newTasks) > 0 {
		content = append(content, "---\n\n## 🚀 New Problems To Solve\n")
		for _, p := range newTasks {
			content = append(content, problemBlock(p, level, ""))
		}
	}
	if len(overdue) > 0 {
		content = append(content, "---\n\n## 🔥 Overdue Focus\n")
		for _, item := range overdue {
			note := fmt.Sprintf(" (Overdue from %s)", item.DueDate())
			content = append(content, problemBlock(item.Problem, level, note))
		}
	}
	if len(reps) > 0 {
		content = append(content, "\n---\n\n## 🔁 Repetitions Due Today\n")
		for _, p := range reps {
			content = append(content, problemBlock(p, level, ""))
		}
	}
	if len(newTasks) == 0 && len(overdue) == 0 && len(reps) == 0 {
		content = append(content, "\n*Nothing scheduled for today. Use `add` to practice more or `rebalance` to adjust your schedule.*")
	}
	return strings.Join(content, "\n")
}

// BuildAddendum renders the section `add` appends to an existing plan.
func BuildAddendum(tasks []*state.Problem, level Richness) string {
	content := []string{"\n---\n\n## ✨ Added Problems\n"}
	for _, p := range tasks {
		note := fmt.Sprintf(" (%s)", p.Category)
		content = append(content, problemBlock(p, level, note))
	}
	return strings.Join(content, "\n")
}

// problemBlock renders one checklist block: the checkbox line the
// parser keys on, the metadata fields the user fills in, and the
// resource content for the chosen richness level.
func problemBlock(p *state.Problem, level Richness, note string) string {
	lines := []string{
		fmt.Sprintf("-   [ ] %d\\. %s%s", p.ID, p.Title, note),
		"    *   **Rating (0-4)**: ",
		"    *   **Notes**: ",
		"    *   **Time Taken (Manual)**: ",
	}

	var resources []string
	if p.LeetcodeURL != "" {
		resources = append(resources, fmt.Sprintf("        *   [LeetCode Problem](%s)", p.LeetcodeURL))
	}
	if p.SolutionLink != nil {
		text := p.SolutionLink.Text
		if text == "" {
			text = "Solution Link"
		}
		url := p.SolutionLink.URL
		if url == "" {
			url = "#"
		}
		resources = append(resources, fmt.Sprintf("        *   [%s](%s)", text, url))
	}

	if level == RichnessSpoilers || level == RichnessVideoLink || level == RichnessVideoEmbed {
		if len(p.Hints) > 0 {
			hintLines := []string{"        *   **Hints:**"}
			for i, hint := range p.Hints {
				hintLines = append(hintLines,
					fmt.Sprintf("            - <details><summary>Hint %d</summary>%s</details>", i+1, hint))
			}
			resources = append(resources, strings.Join(hintLines, "\n"))
		}
		if p.Solution != nil {
			resources = append(resources, solutionBlock(p.Solution))
		}
	}

	if (level == RichnessVideoLink || level == RichnessVideoEmbed) && p.YoutubeID != "" {
		if level == RichnessVideoEmbed {
			resources = append(resources, fmt.Sprintf(
				"        *   **Video Walkthrough:**\n            <iframe src=\"https://www.youtube.com/embed/%s\" width=\"560\" height=\"315\" frameborder=\"0\" allowfullscreen></iframe>",
				p.YoutubeID))
		} else {
			resources = append(resources, fmt.Sprintf(
				"        *   [Video Walkthrough](https://www.youtube.com/watch?v=%s)", p.YoutubeID))
		}
	}

	if len(resources) > 0 {
		lines = append(lines, "    *   **Resources**:")
		lines = append(lines, resources...)
	}
	return strings.Join(lines, "\n")
}

// solutionBlock renders the collapsible full-solution spoiler.
func solutionBlock(sol *state.Solution) string {
	block := []string{"        *   <details><summary>Full Solution (Spoilers)</summary>"}
	if sol.Explanation != "" {
		block = append(block, fmt.Sprintf("            **Explanation:**\n            %s\n", sol.Explanation))
	}
	for _, lang := range sortedLangs(sol.Code) {
		code := sol.Code[lang]
		indented := indentLines(code, "            ")
		block = append(block, fmt.Sprintf("            **%s Code:**\n            ```%s\n%s\n            ```",
			titleCase(lang), lang, indented))
	}
	block = append(block, "            </details>")
	return strings.Join(block, "\n")
}

func sortedLangs(code map[string]string) []string {
	langs := make([]string, 0, len(code))
	for lang := range code {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func indentLines(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
