package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/views"
)

func TestBuildMonthGridStartingOnSunday(t *testing.T) {
	// May 2022 begins on a Sunday, so the grid has no leading blanks.
	anchor := time.Date(2022, time.May, 15, 0, 0, 0, 0, time.UTC)
	grid := views.BuildMonthGrid(anchor, nil)

	assert.Equal(t, 2022, grid.Year)
	assert.Equal(t, time.May, grid.Month)
	assert.Equal(t, 0, grid.LeadingBlanks)
	require.Len(t, grid.Cells, 31)
	assert.Equal(t, 1, grid.Cells[0].Day)
	assert.Equal(t, 31, grid.Cells[30].Day)
}

func TestBuildMonthGridLeadingBlanks(t *testing.T) {
	// April 2026 begins on a Wednesday: three placeholder cells first.
	anchor := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	grid := views.BuildMonthGrid(anchor, nil)

	assert.Equal(t, 3, grid.LeadingBlanks)
	require.Len(t, grid.Cells, 3+30)
	for i := 0; i < 3; i++ {
		assert.Zero(t, grid.Cells[i].Day)
		assert.Empty(t, grid.Cells[i].Events)
	}
	assert.Equal(t, 1, grid.Cells[3].Day)
}

func TestBuildMonthGridPlacesEventsByCalendarDay(t *testing.T) {
	anchor := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	events := []model.Event{
		{ID: "e1", Date: time.Date(2026, time.April, 10, 9, 0, 0, 0, time.UTC)},
		{ID: "e2", Date: time.Date(2026, time.April, 10, 17, 30, 0, 0, time.UTC)},
		{ID: "e3", Date: time.Date(2026, time.May, 10, 9, 0, 0, 0, time.UTC)},
	}

	grid := views.BuildMonthGrid(anchor, events)

	cell := grid.Cells[grid.LeadingBlanks+9]
	require.Equal(t, 10, cell.Day)
	require.Len(t, cell.Events, 2)
	assert.Equal(t, "e1", cell.Events[0].ID)
	assert.Equal(t, "e2", cell.Events[1].ID)

	for i, c := range grid.Cells {
		if c.Day != 10 && len(c.Events) > 0 {
			t.Fatalf("unexpected events on cell %d (day %d)", i, c.Day)
		}
	}
}

func TestSameDayComparesInTargetLocation(t *testing.T) {
	day := time.Date(2026, time.April, 11, 0, 0, 0, 0, time.UTC)

	// 23:00 on April 10 at UTC-5 is already April 11 in UTC.
	late := time.Date(2026, time.April, 10, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))
	assert.True(t, views.SameDay(late, day))
	assert.False(t, views.SameDay(late, day.AddDate(0, 0, -1)))
}
