package schedule

import "fmt"

// Rating is the user's self-assessed difficulty for one attempt, on
// the 0-4 scale printed in every plan document's legend.
type Rating int

const (
	Mastered Rating = iota // Trivial; never schedule again.
	Easy                   // Solved quickly and confidently.
	Medium                 // Solved, but with time or bugs. The default.
	Hard                   // Needed hints or the solution.
	Again                  // Lost; review tomorrow.
)

var ratingNames = [...]string{
	Mastered: "Mastered",
	Easy:     "Easy",
	Medium:   "Medium",
	Hard:     "Hard",
	Again:    "Again",
}

// String returns the rating name, or "Rating(n)" for out-of-scale
// values.
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r is on the 0-4 scale.
func (r Rating) IsValid() bool {
	return r >= Mastered && r <= Again
}

// Normalize maps any out-of-scale value to Medium. Unknown ratings
// must take the medium branch, never crash.
func (r Rating) Normalize() Rating {
	if r.IsValid() {
		return r
	}
	return Medium
}
