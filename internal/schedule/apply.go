package schedule

import (
	"fmt"

	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/state"
)

// Record is one parsed completion report for a problem.
type Record struct {
	Notes     string
	Rating    Rating
	TimeTaken string
}

// Outcome describes what Apply did to a problem.
type Outcome struct {
	// Applied is false when the problem was ineligible (already
	// completed with no review due yet, or mastered).
	Applied bool
	// IntervalDays is the chosen interval; 0 when Cleared or not
	// applied.
	IntervalDays int
	// Cleared is true when the mastered rating removed the problem
	// from the review rotation.
	Cleared bool
}

// Eligible reports whether a completion record may be applied to p on
// the given day: the problem is still pending, or it is completed with
// a review due on or before today. Anything else is ignored so an item
// whose review is not yet due cannot be re-logged.
func Eligible(p *state.Problem, today string) bool {
	if p.Status == state.StatusPending {
		return true
	}
	return p.NextRepetitionDate != nil && *p.NextRepetitionDate <= today
}

// Apply records one attempt on p and reschedules it. The record's
// rating is normalized first, so out-of-scale values take the medium
// branch. Only the medium branch advances the repetition level. The
// next repetition date, when set, is always strictly after today.
func Apply(p *state.Problem, rec Record, today string) (Outcome, error) {
	if !Eligible(p, today) {
		return Outcome{}, nil
	}

	rating := rec.Rating.Normalize()

	p.Status = state.StatusCompleted
	p.CompletionHistory = append(p.CompletionHistory, state.CompletionEntry{
		Date:      today,
		Notes:     rec.Notes,
		Rating:    int(rating),
		TimeTaken: rec.TimeTaken,
	})

	var interval int
	switch rating {
	case Mastered:
		p.NextRepetitionDate = nil
		return Outcome{Applied: true, Cleared: true}, nil
	case Easy:
		interval = EasyIntervalDays
	case Medium:
		interval = intervalAt(p.RepetitionLevel)
		p.RepetitionLevel++
	case Hard:
		interval = HardIntervalDays
	case Again:
		interval = AgainIntervalDays
	}

	next, err := dateutil.AddDays(today, interval)
	if err != nil {
		return Outcome{}, fmt.Errorf("schedule next repetition: %w", err)
	}
	p.NextRepetitionDate = &next
	return Outcome{Applied: true, IntervalDays: interval}, nil
}
