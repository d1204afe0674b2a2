// Package plandoc generates and parses the per-day plan documents the
// user edits by hand. The builder writes checklist blocks; the parser
// recovers completion records from the edited text.
package plandoc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/leetplan/internal/schedule"
)

// Completion is one recovered completion record, keyed by problem ID.
// ManualTime is the user-typed time text; the sync engine resolves the
// final time_taken value against workspace artifacts.
type Completion struct {
	ID         int
	Notes      string
	Rating     schedule.Rating
	ManualTime string
}

// markerRE matches a checklist marker at the start of a line: a bullet
// followed by a checkbox. The ^ anchor (multiline mode) is what keeps
// checkbox-like text inside notes or code fences from starting a new
// block.
var markerRE = regexp.MustCompile(`(?m)^[*-][ \t]*\[([ xX])\]`)

// idRE matches the problem identifier: an integer immediately followed
// by an escaped or literal period.
var idRE = regexp.MustCompile(`(\d+)\\?\.`)

// Parse scans one plan document and returns the completion records of
// every checked block, keyed by problem ID. A checked block with no
// parsable identifier is dropped without comment. A checked block with
// no usable rating defaults to Medium and adds a warning naming the
// problem. When the same ID appears in several checked blocks, the
// later block wins.
func Parse(content string) (map[int]Completion, []string) {
	records := make(map[int]Completion)
	var warnings []string

	markers := markerRE.FindAllStringSubmatchIndex(content, -1)
	for i, m := range markers {
		checkbox := content[m[2]:m[3]]
		if checkbox != "x" && checkbox != "X" {
			continue
		}

		start := m[0]
		end := len(content)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		block := content[start:end]

		firstLine := block
		if nl := strings.IndexByte(block, '\n'); nl >= 0 {
			firstLine = block[:nl]
		}
		idMatch := idRE.FindStringSubmatch(firstLine)
		if idMatch == nil {
			continue
		}
		id, err := strconv.Atoi(idMatch[1])
		if err != nil {
			continue
		}

		rec := Completion{ID: id, Rating: schedule.Medium}
		ratingSet := false
		for _, line := range strings.Split(block, "\n") {
			label, value, ok := splitField(line)
			if !ok {
				continue
			}
			switch {
			case strings.HasPrefix(label, "rating"):
				if n, err := strconv.Atoi(value); err == nil {
					rec.Rating = schedule.Rating(n)
					ratingSet = true
				}
			case label == "notes":
				rec.Notes = value
			case strings.HasPrefix(label, "time taken"):
				rec.ManualTime = value
			}
		}
		if !ratingSet {
			warnings = append(warnings, fmt.Sprintf(
				"Rating not found for problem %d. Defaulting to 'Medium' (%d).", id, int(schedule.Medium)))
		}
		records[id] = rec
	}
	return records, warnings
}

// fieldRE matches a bold metadata label and its value, e.g.
// "    *   **Rating (0-4)**: 3".
var fieldRE = regexp.MustCompile(`(?i)\*\*([^*:]+)\*\*\s*:\s*(.*)$`)

// splitField extracts (label, value) from a metadata line. The label
// comes back lowercased with any parenthetical trimmed off.
func splitField(line string) (label, value string, ok bool) {
	m := fieldRE.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	label = strings.ToLower(strings.TrimSpace(m[1]))
	if i := strings.IndexByte(label, '('); i >= 0 {
		label = strings.TrimSpace(label[:i])
	}
	return label, strings.TrimSpace(m[2]), true
}
