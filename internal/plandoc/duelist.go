package plandoc

import (
	"sort"

	"github.com/abhisek/leetplan/internal/state"
)

// DueLists are the candidate problems for one day's plan.
type DueLists struct {
	// NewToday is pending work scheduled exactly for today.
	NewToday []*state.Problem
	// Overdue is pending work and lapsed reviews from before today,
	// oldest due date first. The plan command folds in a user-chosen
	// prefix of this list.
	Overdue []OverdueItem
	// RepsToday is completed work whose review falls exactly on today.
	RepsToday []*state.Problem
}

// SelectDue partitions the collection into today's plan candidates.
func SelectDue(st *state.State, today string) DueLists {
	var lists DueLists
	for _, p := range st.Problems {
		switch p.Status {
		case state.StatusPending:
			switch {
			case p.ScheduledDate == today:
				lists.NewToday = append(lists.NewToday, p)
			case p.ScheduledDate < today:
				lists.Overdue = append(lists.Overdue, OverdueItem{Problem: p})
			}
		case state.StatusCompleted:
			if p.NextRepetitionDate == nil {
				continue
			}
			switch {
			case *p.NextRepetitionDate == today:
				lists.RepsToday = append(lists.RepsToday, p)
			case *p.NextRepetitionDate < today:
				lists.Overdue = append(lists.Overdue, OverdueItem{Problem: p, IsRepetition: true})
			}
		}
	}
	sort.SliceStable(lists.Overdue, func(i, j int) bool {
		return lists.Overdue[i].DueDate() < lists.Overdue[j].DueDate()
	})
	return lists
}
