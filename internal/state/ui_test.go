package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

func TestClearFiltersPreservesViewAndSort(t *testing.T) {
	ui := state.NewUIStore()

	status := model.TaskStatusBlocked
	team := "team-1"
	ui.SetCurrentView(state.ViewModeKanban)
	ui.SetSort("priority", state.SortAsc)
	ui.SetSearchQuery("launch")
	ui.SetFilterStatus(&status)
	ui.SetFilterTeam(&team)

	ui.ClearFilters()

	assert.Empty(t, ui.SearchQuery())
	assert.Nil(t, ui.FilterStatus())
	assert.Nil(t, ui.FilterPriority())
	assert.Nil(t, ui.FilterTeam())

	// View mode and sort survive a filter reset.
	assert.Equal(t, state.ViewModeKanban, ui.CurrentView())
	assert.Equal(t, "priority", ui.SortBy())
	assert.Equal(t, state.SortAsc, ui.SortOrder())
}

func TestActiveModalVariants(t *testing.T) {
	ui := state.NewUIStore()
	require.Nil(t, ui.ActiveModal())

	ui.SetActiveModal(state.EditTaskModal{ID: "task-1"})

	m, ok := ui.ActiveModal().(state.EditTaskModal)
	require.True(t, ok)
	assert.Equal(t, "task-1", m.ID)

	ui.SetActiveModal(nil)
	assert.Nil(t, ui.ActiveModal())
}

func TestCalendarNavigation(t *testing.T) {
	cal := state.NewCalendarStore()
	cal.SetCurrentDate(time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))

	cal.NavigateMonth(-1)
	assert.Equal(t, time.December, cal.CurrentDate().Month())
	assert.Equal(t, 2025, cal.CurrentDate().Year())

	cal.NavigateMonth(2)
	assert.Equal(t, time.February, cal.CurrentDate().Month())
	assert.Equal(t, 2026, cal.CurrentDate().Year())

	cal.NavigateYear(1)
	assert.Equal(t, 2027, cal.CurrentDate().Year())
}

func TestCalendarSelectedDate(t *testing.T) {
	cal := state.NewCalendarStore()

	_, ok := cal.SelectedDate()
	require.False(t, ok)

	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	cal.SelectDate(day)

	got, ok := cal.SelectedDate()
	require.True(t, ok)
	assert.True(t, got.Equal(day))

	cal.ClearSelectedDate()
	_, ok = cal.SelectedDate()
	assert.False(t, ok)
}

func TestSetEventStatus(t *testing.T) {
	cal := state.NewCalendarStore()
	ev := cal.AddEvent(model.Event{
		Title:  "Design Review",
		Type:   model.EventTypeDesign,
		Status: model.EventStatusUpcoming,
	})

	require.True(t, cal.SetEventStatus(ev.ID, model.EventStatusCompleted))

	got, _ := cal.Events.Get(ev.ID)
	assert.Equal(t, model.EventStatusCompleted, got.Status)
}
