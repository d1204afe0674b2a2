// Package config resolves the journey directory layout and optional
// user settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths describes the on-disk layout of one journey directory.
type Paths struct {
	Base         string
	ProblemLists string
	DailyPlans   string
	Workspace    string
	Archive      string
	StateFile    string
	Dashboard    string
}

// NewPaths builds the layout rooted at base.
func NewPaths(base string) Paths {
	return Paths{
		Base:         base,
		ProblemLists: filepath.Join(base, "problem_lists"),
		DailyPlans:   filepath.Join(base, "daily_plans"),
		Workspace:    filepath.Join(base, "workspace"),
		Archive:      filepath.Join(base, "archive"),
		StateFile:    filepath.Join(base, "state.json"),
		Dashboard:    filepath.Join(base, "dashboard.md"),
	}
}

// ResolveBase returns the journey directory using the --dir flag value
// (highest priority), then the LEETPLAN_HOME env var, then the current
// working directory.
func ResolveBase(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if p := os.Getenv("LEETPLAN_HOME"); p != "" {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return wd, nil
}

// EnsureDirs creates every journey subdirectory that does not exist yet.
func (p Paths) EnsureDirs() error {
	for _, dir := range []string{p.ProblemLists, p.DailyPlans, p.Workspace, p.Archive} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// DailyPlanFile returns the plan document path for the given ISO date.
func (p Paths) DailyPlanFile(date string) string {
	return filepath.Join(p.DailyPlans, date+".md")
}
