package plandoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/leetplan/internal/schedule"
	"github.com/abhisek/leetplan/internal/state"
)

func TestParse_CheckedBlock(t *testing.T) {
	doc := `# LeetCode Plan for: 2024-01-05

-   [x] 1\. Two Sum
    *   **Rating (0-4)**: 3
    *   **Notes**: used hints
    *   **Time Taken (Manual)**: 25m
`
	records, warnings := Parse(doc)
	require.Empty(t, warnings)
	require.Len(t, records, 1)

	rec := records[1]
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, schedule.Hard, rec.Rating)
	assert.Equal(t, "used hints", rec.Notes)
	assert.Equal(t, "25m", rec.ManualTime)
}

func TestParse_UncheckedBlocksProduceNoRecords(t *testing.T) {
	doc := `- [ ] 7\. Two Sum
    *   **Rating (0-4)**: 2
- [x] 8\. Add Two Numbers
    *   **Rating (0-4)**: 1
`
	records, _ := Parse(doc)
	require.Len(t, records, 1)
	assert.Equal(t, schedule.Easy, records[8].Rating)
	_, seen := records[7]
	assert.False(t, seen)
}

func TestParse_MissingRatingDefaultsToMediumWithWarning(t *testing.T) {
	doc := `- [x] 42\. Trapping Rain Water
    *   **Rating (0-4)**:
    *   **Notes**: tricky edge case
`
	records, warnings := Parse(doc)
	require.Len(t, records, 1)
	assert.Equal(t, schedule.Medium, records[42].Rating)
	assert.Equal(t, "tricky edge case", records[42].Notes)
	assert.Empty(t, records[42].ManualTime)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "42")
	assert.Contains(t, warnings[0], "Medium")
}

func TestParse_NonNumericRatingIsUnset(t *testing.T) {
	doc := `- [x] 5\. Longest Palindromic Substring
    *   **Rating (0-4)**: easy
`
	records, warnings := Parse(doc)
	assert.Equal(t, schedule.Medium, records[5].Rating)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "5")
}

func TestParse_BlockWithoutIdentifierIsDropped(t *testing.T) {
	doc := `- [x] revisit the sliding window pattern
    *   **Rating (0-4)**: 2
- [x] 3\. Longest Substring
    *   **Rating (0-4)**: 2
`
	records, warnings := Parse(doc)
	require.Empty(t, warnings)
	require.Len(t, records, 1)
	assert.Contains(t, records, 3)
}

func TestParse_IdentifierMustBeOnFirstLine(t *testing.T) {
	doc := `- [x] some note to self
    see problem 12. for details
`
	records, _ := Parse(doc)
	assert.Empty(t, records)
}

func TestParse_EmptyDocument(t *testing.T) {
	records, warnings := Parse("# Just a heading\n\nNo checklist here.\n")
	assert.Empty(t, records)
	assert.Empty(t, warnings)
}

func TestParse_CheckboxInsideNotesDoesNotStartBlock(t *testing.T) {
	doc := `- [x] 9\. Palindrome Number
    *   **Rating (0-4)**: 1
    *   **Notes**: remember the pattern - [x] marks done
`
	records, warnings := Parse(doc)
	require.Empty(t, warnings)
	require.Len(t, records, 1)
	assert.Equal(t, "remember the pattern - [x] marks done", records[9].Notes)
}

func TestParse_UppercaseCheckboxCounts(t *testing.T) {
	doc := "* [X] 2\\. Add Two Numbers\n    *   **Rating (0-4)**: 0\n"
	records, _ := Parse(doc)
	require.Len(t, records, 1)
	assert.Equal(t, schedule.Mastered, records[2].Rating)
}

func TestParse_LiteralPeriodIdentifier(t *testing.T) {
	doc := "- [x] 15. 3Sum\n    *   **Rating (0-4)**: 2\n"
	records, _ := Parse(doc)
	assert.Contains(t, records, 15)
}

func TestParse_LastBlockWinsForDuplicateID(t *testing.T) {
	doc := `- [x] 6\. Zigzag Conversion
    *   **Rating (0-4)**: 4
    *   **Notes**: first try
- [x] 6\. Zigzag Conversion
    *   **Rating (0-4)**: 1
    *   **Notes**: second try
`
	records, _ := Parse(doc)
	require.Len(t, records, 1)
	assert.Equal(t, schedule.Easy, records[6].Rating)
	assert.Equal(t, "second try", records[6].Notes)
}

func TestParse_CaseInsensitiveLabels(t *testing.T) {
	doc := `- [x] 11\. Container With Most Water
    *   **rating (0-4)**: 2
    *   **NOTES**: two pointers
    *   **Time taken (manual)**: 1h 5m
`
	records, warnings := Parse(doc)
	require.Empty(t, warnings)
	rec := records[11]
	assert.Equal(t, schedule.Medium, rec.Rating)
	assert.Equal(t, "two pointers", rec.Notes)
	assert.Equal(t, "1h 5m", rec.ManualTime)
}

func TestParse_AlternateRatingRangeLabel(t *testing.T) {
	// Blocks appended by `add` historically carried a (1-4) label.
	doc := "- [x] 20\\. Valid Parentheses (Stack)\n    *   **Rating (1-4)**: 3\n"
	records, _ := Parse(doc)
	assert.Equal(t, schedule.Hard, records[20].Rating)
}

func TestBuildDaily_RoundTripsThroughParser(t *testing.T) {
	p := testProblem(1, "Two Sum")
	doc := BuildDaily("2024-01-05", []*state.Problem{p}, nil, nil, RichnessMinimal)

	// Freshly generated plans have only unchecked boxes.
	records, warnings := Parse(doc)
	assert.Empty(t, records)
	assert.Empty(t, warnings)

	// Simulate the user checking the box and filling in the fields.
	edited := strings.Replace(doc, "-   [ ] 1\\. Two Sum", "-   [x] 1\\. Two Sum", 1)
	edited = strings.Replace(edited, "**Rating (0-4)**: ", "**Rating (0-4)**: 2", 1)
	edited = strings.Replace(edited, "**Notes**: ", "**Notes**: clean solve", 1)

	records, warnings = Parse(edited)
	require.Empty(t, warnings)
	require.Len(t, records, 1)
	assert.Equal(t, schedule.Medium, records[1].Rating)
	assert.Equal(t, "clean solve", records[1].Notes)
	assert.Empty(t, records[1].ManualTime)
}
