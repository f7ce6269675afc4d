// Package metrics derives dashboard and board statistics from cached entities.
// Every function is pure.
package metrics

import (
	"github.com/thenoetrevino/taskdeck/internal/kanban"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// RecentBoardsLimit is how many boards the dashboard lists
const RecentBoardsLimit = 3

// Bar is one row of the status distribution
type Bar struct {
	Status  models.Status `json:"status"`
	Title   string        `json:"title"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// Summary counts tasks per status
type Summary struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
	// Completed equals Done; Pending is everything else
	Completed int   `json:"completed"`
	Pending   int   `json:"pending"`
	Bars      []Bar `json:"bars"`
}

// DashboardSummary adds board figures to a task summary
type DashboardSummary struct {
	Summary
	TotalBoards  int            `json:"totalBoards"`
	RecentBoards []models.Board `json:"recentBoards"`
}

// Percent returns count as a percentage of total, or 0 when total is 0
func Percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Summarize counts tasks by status
func Summarize(tasks []models.Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusTodo:
			s.Todo++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusDone:
			s.Done++
		}
	}
	s.Completed = s.Done
	s.Pending = s.Total - s.Completed

	s.Bars = make([]Bar, 0, len(kanban.Columns))
	for _, c := range kanban.Columns {
		count := s.Count(c.Status)
		s.Bars = append(s.Bars, Bar{
			Status:  c.Status,
			Title:   c.Title,
			Count:   count,
			Percent: Percent(count, s.Total),
		})
	}
	return s
}

// Count returns the number of tasks with status
func (s Summary) Count(status models.Status) int {
	switch status {
	case models.StatusTodo:
		return s.Todo
	case models.StatusInProgress:
		return s.InProgress
	case models.StatusDone:
		return s.Done
	}
	return 0
}

// CompletionRate is the share of tasks that are done, as a percentage
func (s Summary) CompletionRate() float64 {
	return Percent(s.Completed, s.Total)
}

// Dashboard summarizes every task across boards and picks the boards to feature
func Dashboard(boards []models.Board, tasks []models.Task) DashboardSummary {
	recent := boards
	if len(recent) > RecentBoardsLimit {
		recent = recent[:RecentBoardsLimit]
	}
	return DashboardSummary{
		Summary:      Summarize(tasks),
		TotalBoards:  len(boards),
		RecentBoards: recent,
	}
}

// CountByAssignee returns the number of tasks assigned to each user.
// Unassigned tasks are counted under the empty key.
func CountByAssignee(tasks []models.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.AssignedTo]++
	}
	return counts
}
