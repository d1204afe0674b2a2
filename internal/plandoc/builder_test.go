package plandoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetplan/internal/state"
)

func testProblem(id int, title string) *state.Problem {
	return &state.Problem{
		ID:            id,
		Title:         title,
		Category:      "Arrays & Hashing",
		Status:        state.StatusPending,
		ScheduledDate: "2024-01-05",
		LeetcodeURL:   "https://leetcode.com/problems/two-sum/",
	}
}

func TestBuildDaily_Sections(t *testing.T) {
	newTask := testProblem(1, "Two Sum")
	due := "2024-01-03"
	rep := &state.Problem{
		ID: 9, Title: "Palindrome Number", Status: state.StatusCompleted,
		NextRepetitionDate: &due,
	}
	overdue := OverdueItem{Problem: testProblem(2, "Add Two Numbers")}

	doc := BuildDaily("2024-01-05", []*state.Problem{newTask}, []OverdueItem{overdue}, []*state.Problem{rep}, RichnessMinimal)

	assert.Contains(t, doc, "# LeetCode Plan for: 2024-01-05")
	assert.Contains(t, doc, "### Rating Legend")
	assert.Contains(t, doc, "## 🚀 New Problems To Solve")
	assert.Contains(t, doc, "## 🔥 Overdue Focus")
	assert.Contains(t, doc, "## 🔁 Repetitions Due Today")
	assert.Contains(t, doc, "-   [ ] 1\\. Two Sum")
	assert.Contains(t, doc, "-   [ ] 2\\. Add Two Numbers (Overdue from 2024-01-05)")
	assert.Contains(t, doc, "-   [ ] 9\\. Palindrome Number")
	assert.Contains(t, doc, "[LeetCode Problem](https://leetcode.com/problems/two-sum/)")
}

func TestBuildDaily_OverdueRepetitionShowsReviewDate(t *testing.T) {
	due := "2024-01-02"
	p := &state.Problem{
		ID: 3, Title: "Longest Substring", Status: state.StatusCompleted,
		ScheduledDate: "2023-12-01", NextRepetitionDate: &due,
	}
	doc := BuildDaily("2024-01-05", nil, []OverdueItem{{Problem: p, IsRepetition: true}}, nil, RichnessMinimal)
	assert.Contains(t, doc, "(Overdue from 2024-01-02)")
}

func TestBuildDaily_EmptyPlan(t *testing.T) {
	doc := BuildDaily("2024-01-05", nil, nil, nil, RichnessMinimal)
	assert.Contains(t, doc, "*Nothing scheduled for today.")
	assert.NotContains(t, doc, "## 🚀")
}

func TestBuildDaily_SpoilersIncludeHintsAndSolution(t *testing.T) {
	p := testProblem(1, "Two Sum")
	p.Hints = []string{"Try a hash map.", "One pass is enough."}
	p.Solution = &state.Solution{
		Explanation: "Track seen values by their index.",
		Code:        map[string]string{"python": "def twoSum(nums, target):\n    pass"},
	}

	minimal := BuildDaily("2024-01-05", []*state.Problem{p}, nil, nil, RichnessMinimal)
	assert.NotContains(t, minimal, "Hint 1")
	assert.NotContains(t, minimal, "Full Solution")

	spoilers := BuildDaily("2024-01-05", []*state.Problem{p}, nil, nil, RichnessSpoilers)
	assert.Contains(t, spoilers, "<details><summary>Hint 1</summary>Try a hash map.</details>")
	assert.Contains(t, spoilers, "<details><summary>Hint 2</summary>One pass is enough.</details>")
	assert.Contains(t, spoilers, "Full Solution (Spoilers)")
	assert.Contains(t, spoilers, "**Python Code:**")
	assert.Contains(t, spoilers, "```python")
}

func TestBuildDaily_VideoLevels(t *testing.T) {
	p := testProblem(1, "Two Sum")
	p.YoutubeID = "KLlXCFG5TnA"

	link := BuildDaily("2024-01-05", []*state.Problem{p}, nil, nil, RichnessVideoLink)
	assert.Contains(t, link, "[Video Walkthrough](https://www.youtube.com/watch?v=KLlXCFG5TnA)")
	assert.NotContains(t, link, "<iframe")

	embed := BuildDaily("2024-01-05", []*state.Problem{p}, nil, nil, RichnessVideoEmbed)
	assert.Contains(t, embed, "<iframe src=\"https://www.youtube.com/embed/KLlXCFG5TnA\"")
}

func TestBuildAddendum(t *testing.T) {
	p := testProblem(4, "Median of Two Sorted Arrays")
	doc := BuildAddendum([]*state.Problem{p}, RichnessMinimal)

	assert.Contains(t, doc, "## ✨ Added Problems")
	assert.Contains(t, doc, "-   [ ] 4\\. Median of Two Sorted Arrays (Arrays & Hashing)")

	records, _ := Parse(doc)
	assert.Empty(t, records, "fresh addendum has no checked blocks")
}

func TestParseRichness(t *testing.T) {
	assert.Equal(t, RichnessSpoilers, ParseRichness("spoilers"))
	assert.Equal(t, RichnessMinimal, ParseRichness("minimal"))
	assert.Equal(t, RichnessMinimal, ParseRichness("bogus"))
	assert.Equal(t, RichnessMinimal, ParseRichness(""))
}

func TestBuildDaily_FieldLinesKeepTrailingSpace(t *testing.T) {
	// The user types directly after the colon; the template leaves a
	// space there for them.
	doc := BuildDaily("2024-01-05", []*state.Problem{testProblem(1, "Two Sum")}, nil, nil, RichnessMinimal)
	for _, line := range strings.Split(doc, "\n") {
		if strings.Contains(line, "**Rating (0-4)**:") {
			require.True(t, strings.HasSuffix(line, ": "))
		}
	}
}
