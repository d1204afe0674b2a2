// Package schedule implements the adaptive repetition policy: given a
// problem's current state and a difficulty rating, it decides when the
// problem comes up for review next.
package schedule

// Intervals is the expanding review schedule in days, indexed by
// repetition level. Levels past the end stay at the final interval.
var Intervals = []int{1, 7, 16, 35, 90}

const (
	// EasyIntervalDays pushes a well-known problem far out without
	// touching its level.
	EasyIntervalDays = 60
	// HardIntervalDays pulls a struggled-with problem back into
	// near-term rotation.
	HardIntervalDays = 2
	// AgainIntervalDays reschedules a failed problem for tomorrow.
	AgainIntervalDays = 1
)

// intervalAt returns the table interval for a repetition level,
// clamping past the end.
func intervalAt(level int) int {
	if level >= len(Intervals) {
		return Intervals[len(Intervals)-1]
	}
	return Intervals[level]
}
