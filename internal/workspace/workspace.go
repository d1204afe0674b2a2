// Package workspace reads (never writes) the timestamps of scratch
// solution files to estimate how long a problem took, and clears the
// scratch directory when a fresh plan is generated.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Clean removes every regular file in dir. Missing dir is fine.
func Clean(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read workspace: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("clean workspace: %w", err)
		}
	}
	return nil
}

// DeriveDuration looks for an artifact named {id}.* in dir and, when
// its modification time exceeds its creation time by more than one
// second, returns that delta as a duration label. Any failure along
// the way (no artifact, artifact vanished, platform without creation
// time) reports ok=false; the caller falls back to manual time.
func DeriveDuration(dir string, id int) (label string, ok bool) {
	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%d.*", id)))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	created, modified, ok := fileTimes(matches[0])
	if !ok {
		return "", false
	}
	delta := modified.Sub(created)
	if delta <= time.Second {
		return "", false
	}
	return FormatDuration(delta), true
}

// FormatDuration renders a duration as Ns, Nm Ss, or Nh Mm, choosing
// the coarsest unit that keeps both components meaningful. Components
// truncate rather than round.
func FormatDuration(d time.Duration) string {
	secs := int(d.Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	mins := secs / 60
	if mins < 60 {
		return fmt.Sprintf("%dm %ds", mins, secs%60)
	}
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}
