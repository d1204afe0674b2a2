// Package state defines the problem-state collection and its on-disk
// JSON store. The state file is the source of truth for the whole
// journey; external tools may read it but only this package writes it.
package state

// Status is the lifecycle status of a tracked problem.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// SolutionLink is an external writeup reference carried from the plan
// list for rendering.
type SolutionLink struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Solution holds spoiler content for a problem.
type Solution struct {
	Explanation string            `json:"explanation,omitempty"`
	Code        map[string]string `json:"code,omitempty"`
}

// CompletionEntry records one attempt at a problem. History is
// append-only and never reordered; it is the audit trail.
type CompletionEntry struct {
	Date      string `json:"date"`
	Notes     string `json:"notes"`
	Rating    int    `json:"rating"`
	TimeTaken string `json:"time_taken"`
}

// Problem is the tracked state of one study item. Identity is the
// integer ID, unique across the collection and never reused.
type Problem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   Status `json:"status"`

	// ScheduledDate is the date the problem is first due as new work.
	// Meaningful only while pending.
	ScheduledDate string `json:"scheduled_date"`

	// NextRepetitionDate is nil when the problem has never been
	// completed or has been rated mastered (no further review).
	NextRepetitionDate *string `json:"next_repetition_date"`

	// RepetitionLevel indexes the spaced-repetition interval table.
	// It only advances on medium-rated reviews and never decreases.
	RepetitionLevel int `json:"repetition_level"`

	CompletionHistory []CompletionEntry `json:"completion_history"`

	// Resource fields carried through from the plan-list template.
	LeetcodeURL  string        `json:"leetcode_url,omitempty"`
	SolutionLink *SolutionLink `json:"solution_link,omitempty"`
	Hints        []string      `json:"hints,omitempty"`
	Solution     *Solution     `json:"solution,omitempty"`
	YoutubeID    string        `json:"youtube_id,omitempty"`
}

// State is the whole problem-state collection plus plan metadata.
type State struct {
	PlanName string `json:"plan_name"`
	// PlanFile is the file stem of the originating plan list, kept so
	// the dashboard can reload category layout without guessing from
	// the display name.
	PlanFile         string     `json:"plan_file,omitempty"`
	RichContentLevel string     `json:"rich_content_level"`
	Problems         []*Problem `json:"problems"`
}

// Lookup returns the problem with the given ID, or nil.
func (s *State) Lookup(id int) *Problem {
	for _, p := range s.Problems {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Pending returns the problems still awaiting first completion, in
// collection order.
func (s *State) Pending() []*Problem {
	var out []*Problem
	for _, p := range s.Problems {
		if p.Status == StatusPending {
			out = append(out, p)
		}
	}
	return out
}

// Completed returns the problems with at least one recorded attempt.
func (s *State) Completed() []*Problem {
	var out []*Problem
	for _, p := range s.Problems {
		if p.Status == StatusCompleted {
			out = append(out, p)
		}
	}
	return out
}
