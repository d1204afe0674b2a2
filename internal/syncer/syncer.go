// Package syncer orchestrates a sync pass: parse every edited plan
// document, apply the adaptive scheduler per matched record, persist
// state, and consume the documents.
package syncer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/abhisek/leetplan/internal/config"
	"github.com/abhisek/leetplan/internal/dateutil"
	"github.com/abhisek/leetplan/internal/plandoc"
	"github.com/abhisek/leetplan/internal/schedule"
	"github.com/abhisek/leetplan/internal/state"
	"github.com/abhisek/leetplan/internal/workspace"
)

// ErrNoState means sync was invoked before any plan was initialized.
var ErrNoState = errors.New("no plan initialized")

// Renderer re-renders the downstream view after a sync pass.
type Renderer interface {
	Render(st *state.State) error
}

// Engine runs sync passes over one journey directory.
type Engine struct {
	Paths    config.Paths
	Store    *state.Store
	Clock    dateutil.Clock
	Renderer Renderer
	// Out receives the human-readable per-item sync lines and parser
	// warnings.
	Out io.Writer
}

// Result summarizes one sync pass.
type Result struct {
	// Consumed counts plan documents processed and deleted.
	Consumed int
	// Applied counts problems whose state was mutated.
	Applied int
	// Failed lists documents that could not be read; their files are
	// left in place for the next run.
	Failed []string
}

// Run executes one sync pass. State is persisted after each document
// with at least one mutation, and a document is deleted only once its
// mutations are durably saved, so a mid-run failure loses at most the
// in-flight document. With no plan documents on disk the state is left
// untouched but the downstream view is still re-rendered.
func (e *Engine) Run() (*Result, error) {
	st, err := e.Store.Load()
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("%w: run 'init' first, or restore state.json", ErrNoState)
	}

	docs, err := filepath.Glob(filepath.Join(e.Paths.DailyPlans, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list plan documents: %w", err)
	}
	sort.Strings(docs)

	res := &Result{}
	if len(docs) == 0 {
		fmt.Fprintln(e.Out, "No daily plans found to sync. Regenerating dashboard from current state...")
		return res, e.render(st)
	}

	today := e.Clock.Today()
	for _, doc := range docs {
		raw, err := os.ReadFile(doc)
		if err != nil {
			res.Failed = append(res.Failed, doc)
			fmt.Fprintf(e.Out, "Skipping unreadable plan %s: %v\n", filepath.Base(doc), err)
			continue
		}

		records, warnings := plandoc.Parse(string(raw))
		for _, w := range warnings {
			fmt.Fprintln(e.Out, "Warning: "+w)
		}

		mutated := false
		for _, p := range st.Problems {
			rec, ok := records[p.ID]
			if !ok {
				continue
			}
			outcome, err := schedule.Apply(p, schedule.Record{
				Notes:     rec.Notes,
				Rating:    rec.Rating,
				TimeTaken: e.resolveTime(p.ID, rec.ManualTime),
			}, today)
			if err != nil {
				return res, err
			}
			if !outcome.Applied {
				continue
			}
			mutated = true
			res.Applied++
			entry := p.CompletionHistory[len(p.CompletionHistory)-1]
			fmt.Fprintf(e.Out, "Synced progress for: %d. %s (Rating: %d, Time: %s)\n",
				p.ID, p.Title, entry.Rating, entry.TimeTaken)
		}

		if mutated {
			if err := e.Store.Save(st); err != nil {
				return res, fmt.Errorf("persist state for %s: %w", filepath.Base(doc), err)
			}
		}
		if err := os.Remove(doc); err != nil {
			return res, fmt.Errorf("consume plan %s: %w", filepath.Base(doc), err)
		}
		res.Consumed++
	}

	fmt.Fprintf(e.Out, "Synced and removed %d daily plan(s).\n", res.Consumed)
	return res, e.render(st)
}

// resolveTime picks the time_taken value for a record: a duration
// derived from the workspace artifact's timestamps when available,
// else the user's manual text, else the N/A sentinel.
func (e *Engine) resolveTime(id int, manual string) string {
	if label, ok := workspace.DeriveDuration(e.Paths.Workspace, id); ok {
		return label
	}
	if manual != "" {
		return manual
	}
	return "N/A"
}

func (e *Engine) render(st *state.State) error {
	if e.Renderer == nil {
		return nil
	}
	return e.Renderer.Render(st)
}
