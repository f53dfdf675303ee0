package services

import (
	"time"

	"github.com/ghuser/bizzy/services/task/domain/models"
)

// Summary counts a user's tasks by state.
type Summary struct {
	Total          int
	Planned        int // not yet complete
	Completed      int
	Upcoming       int // due after today, not complete
	Overdue        int // due before today, not complete
	CompletionRate float64
}

// Summarize classifies tasks relative to now. Due dates are whole days, so a
// task due today is neither upcoming nor overdue.
func Summarize(tasks []*models.Task, now time.Time) Summary {
	y, m, d := now.UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed() {
			s.Completed++
			continue
		}
		s.Planned++
		switch {
		case t.Due.After(today):
			s.Upcoming++
		case t.Due.Before(today):
			s.Overdue++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
