// Package kanban lays tasks out in status columns and moves them between
// columns with a drag and drop gesture.
package kanban

import "github.com/thenoetrevino/taskdeck/internal/models"

// Column is one fixed board column
type Column struct {
	Status models.Status
	Title  string
}

// Columns are the board columns, left to right
var Columns = []Column{
	{Status: models.StatusTodo, Title: models.StatusTodo.Title()},
	{Status: models.StatusInProgress, Title: models.StatusInProgress.Title()},
	{Status: models.StatusDone, Title: models.StatusDone.Title()},
}

// ColumnIndex returns the position of the column holding status, or -1
func ColumnIndex(status models.Status) int {
	for i, c := range Columns {
		if c.Status == status {
			return i
		}
	}
	return -1
}

// Neighbor returns the status of the column delta steps away from status
func Neighbor(status models.Status, delta int) (models.Status, bool) {
	i := ColumnIndex(status)
	if i < 0 {
		return "", false
	}
	j := i + delta
	if j < 0 || j >= len(Columns) {
		return "", false
	}
	return Columns[j].Status, true
}

// Group partitions tasks into one slice per column, in Columns order.
// Relative task order is preserved. Tasks with an unknown status are left out.
func Group(tasks []models.Task) [][]models.Task {
	groups := make([][]models.Task, len(Columns))
	for _, t := range tasks {
		if i := ColumnIndex(t.Status); i >= 0 {
			groups[i] = append(groups[i], t)
		}
	}
	return groups
}
