package dashboard

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/planlist"
	"github.com/abhisek/leetplan/internal/state"
)

func testList(t *testing.T) *planlist.List {
	t.Helper()
	raw := `{
		"name": "Blind 75",
		"categories": {
			"Arrays & Hashing": [
				{"id": 1, "title": "Two Sum"},
				{"id": 217, "title": "Contains Duplicate"}
			],
			"Two Pointers": [
				{"id": 125, "title": "Valid Palindrome"}
			]
		}
	}`
	var l planlist.List
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	return &l
}

func testState() *state.State {
	due := "2024-01-12"
	return &state.State{
		PlanName: "Blind 75",
		PlanFile: "blind75",
		Problems: []*state.Problem{
			{
				ID: 1, Title: "Two Sum", Status: state.StatusCompleted,
				ScheduledDate: "2024-01-01", NextRepetitionDate: &due, RepetitionLevel: 1,
				CompletionHistory: []state.CompletionEntry{
					{Date: "2024-01-05", Notes: "used a map", Rating: 2, TimeTaken: "12m 30s"},
					{Date: "2024-01-11", Notes: "", Rating: 1, TimeTaken: "N/A"},
				},
			},
			{ID: 217, Title: "Contains Duplicate", Status: state.StatusPending, ScheduledDate: "2024-01-02"},
			{ID: 125, Title: "Valid Palindrome", Status: state.StatusPending, ScheduledDate: "2024-01-03"},
		},
	}
}

func TestBuild(t *testing.T) {
	out := Build(testState(), testList(t))

	assert.Contains(t, out, "# LeetCode Journey: Blind 75 Dashboard")
	assert.Contains(t, out, "**Overall Progress: 1 / 3 (33.3%)**")
	assert.Contains(t, out, "### Arrays & Hashing (1 / 2)")
	assert.Contains(t, out, "### Two Pointers (0 / 1)")
	assert.Contains(t, out, "- [x] 1\\. Two Sum (Next Repeat: 2024-01-12)")
	assert.Contains(t, out, "- [ ] 217\\. Contains Duplicate")
	assert.Contains(t, out, "- [ ] 125\\. Valid Palindrome")
	assert.Contains(t, out, "  - **Attempt 1 (2024-01-05, Time: 12m 30s - Rating: 2):** used a map")
	assert.Contains(t, out, "  - **Attempt 2 (2024-01-11, Time: N/A - Rating: 1):** No notes provided.")
}

func TestBuild_AttemptsStayInInsertionOrder(t *testing.T) {
	out := Build(testState(), testList(t))
	first := strings.Index(out, "Attempt 1 (2024-01-05")
	second := strings.Index(out, "Attempt 2 (2024-01-11")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestRenderer_MissingPlanListIsNotAnError(t *testing.T) {
	base := t.TempDir()
	paths := config.NewPaths(base)
	require.NoError(t, paths.EnsureDirs())

	r := Renderer{Paths: paths}
	require.NoError(t, r.Render(testState()))

	_, err := os.Stat(paths.Dashboard)
	assert.True(t, os.IsNotExist(err))
}

func TestRenderer_WritesDashboard(t *testing.T) {
	base := t.TempDir()
	paths := config.NewPaths(base)
	require.NoError(t, paths.EnsureDirs())

	listJSON := `{"name": "Blind 75", "categories": {"Arrays & Hashing": [{"id": 1, "title": "Two Sum"}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(paths.ProblemLists, "blind75.json"), []byte(listJSON), 0o644))

	r := Renderer{Paths: paths}
	require.NoError(t, r.Render(testState()))

	data, err := os.ReadFile(paths.Dashboard)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Blind 75 Dashboard")
}
