package views

import "github.com/nhle/projectflow/internal/model"

// KanbanColumn is one fixed status bucket on the board.
type KanbanColumn struct {
	Status model.TaskStatus
	Tasks  []model.Task
}

// Kanban partitions tasks into the five fixed status columns, in column
// order. A task's column is exactly its status field; within a column
// tasks keep their input order.
func Kanban(tasks []model.Task) []KanbanColumn {
	columns := make([]KanbanColumn, len(model.TaskStatuses))
	index := make(map[model.TaskStatus]int, len(model.TaskStatuses))
	for i, st := range model.TaskStatuses {
		columns[i] = KanbanColumn{Status: st}
		index[st] = i
	}

	for _, t := range tasks {
		if i, ok := index[t.Status]; ok {
			columns[i].Tasks = append(columns[i].Tasks, t)
		}
	}
	return columns
}
