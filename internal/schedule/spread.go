package schedule

import (
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/state"
)

// Spread assigns scheduled dates to problems in order, perDay per
// calendar day starting at start. Used at init time over the whole
// collection and by rebalance over the remaining pending problems.
func Spread(problems []*state.Problem, start string, perDay int) error {
	if perDay < 1 {
		perDay = 1
	}
	current := start
	count := 0
	for _, p := range problems {
		if count >= perDay {
			next, err := dateutil.AddDays(current, 1)
			if err != nil {
				return err
			}
			current = next
			count = 0
		}
		p.ScheduledDate = current
		count++
	}
	return nil
}
