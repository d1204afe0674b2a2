//go:build !linux && !darwin

package workspace

import "time"

// fileTimes reports ok=false on platforms without a usable creation
// time; callers fall back to manual time tracking.
func fileTimes(string) (created, modified time.Time, ok bool) {
	return time.Time{}, time.Time{}, false
}
