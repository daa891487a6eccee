// Package schedule implements the deadline-aware task planner.
//
// Generate takes a project's tasks and a start date and assigns every
// incomplete task to its own calendar day, ordered Earliest-Deadline-First
// with shorter tasks first among equal deadlines. It is a pure function:
// no I/O, no clock, no retained state, and the input slice is never modified,
// so it is safe to call concurrently.
package schedule

import (
	"slices"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"

	"github.com/phrazzld/planner-api/internal/domain"
)

// Entry is one task's assignment to a calendar day.
type Entry struct {
	TaskID         uuid.UUID
	TaskTitle      string
	ScheduledDate  civil.Date
	DueDate        civil.Date
	EstimatedHours int
}

// IsLate reports whether the entry is scheduled strictly after its due date.
func (e Entry) IsLate() bool {
	return e.ScheduledDate.After(e.DueDate)
}

// Result is a computed plan. Entries are in scheduling order, which is also
// chronological order.
type Result struct {
	Entries    []Entry
	TotalHours int
	TotalDays  int
}

// LateCount returns the number of entries scheduled past their due date.
func (r *Result) LateCount() int {
	n := 0
	for _, e := range r.Entries {
		if e.IsLate() {
			n++
		}
	}
	return n
}

// Compare orders two tasks by due date, then by estimated hours.
// It returns a negative number when a should be scheduled before b.
func Compare(a, b *domain.Task) int {
	switch {
	case a.DueDate.Before(b.DueDate):
		return -1
	case a.DueDate.After(b.DueDate):
		return 1
	}
	return a.EstimatedHours - b.EstimatedHours
}

// Generate builds a one-task-per-day plan starting at start.
// Completed tasks are skipped. Tasks that compare equal keep their input order.
func Generate(tasks []domain.Task, start civil.Date) *Result {
	pending := make([]*domain.Task, 0, len(tasks))
	for i := range tasks {
		if !tasks[i].IsCompleted {
			pending = append(pending, &tasks[i])
		}
	}

	slices.SortStableFunc(pending, Compare)

	result := &Result{Entries: make([]Entry, 0, len(pending))}
	for i, t := range pending {
		result.Entries = append(result.Entries, Entry{
			TaskID:         t.ID,
			TaskTitle:      t.Title,
			ScheduledDate:  start.AddDays(i),
			DueDate:        t.DueDate,
			EstimatedHours: t.EstimatedHours,
		})
		result.TotalHours += t.EstimatedHours
	}
	result.TotalDays = len(result.Entries)

	return result
}
