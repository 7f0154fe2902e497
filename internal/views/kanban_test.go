package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/views"
)

func TestKanbanPartitionsIntoFixedColumns(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Status: model.TaskStatusInProgress},
		{ID: "t2", Status: model.TaskStatusNew},
		{ID: "t3", Status: model.TaskStatusInProgress},
		{ID: "t4", Status: model.TaskStatusBlocked},
	}

	columns := views.Kanban(tasks)
	require.Len(t, columns, 5)

	// Columns appear in workflow order even when empty.
	assert.Equal(t, model.TaskStatusNew, columns[0].Status)
	assert.Equal(t, model.TaskStatusScheduled, columns[1].Status)
	assert.Equal(t, model.TaskStatusInProgress, columns[2].Status)
	assert.Equal(t, model.TaskStatusCompleted, columns[3].Status)
	assert.Equal(t, model.TaskStatusBlocked, columns[4].Status)

	assert.Len(t, columns[0].Tasks, 1)
	assert.Empty(t, columns[1].Tasks)
	assert.Empty(t, columns[3].Tasks)
	assert.Len(t, columns[4].Tasks, 1)

	// Within a column, input order is preserved.
	require.Len(t, columns[2].Tasks, 2)
	assert.Equal(t, "t1", columns[2].Tasks[0].ID)
	assert.Equal(t, "t3", columns[2].Tasks[1].ID)
}

func TestKanbanEmptyInput(t *testing.T) {
	columns := views.Kanban(nil)
	require.Len(t, columns, 5)
	for _, col := range columns {
		assert.Empty(t, col.Tasks)
	}
}
