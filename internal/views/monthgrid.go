package views

import (
	"time"

	"github.com/nhle/projectflow/internal/model"
)

// MonthCell is one slot in the month grid. Leading placeholder cells
// before day 1 have Day == 0 and no events.
type MonthCell struct {
	Day    int
	Date   time.Time
	Events []model.Event
}

// MonthGrid is a 7-column calendar layout for one month.
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []MonthCell
}

// BuildMonthGrid lays out the month containing anchor. The number of
// leading blanks equals the weekday index of day 1 (0 = Sunday), followed
// by one cell per day of the month. Events land on a day by calendar-date
// equality in the anchor's location, never by instant equality.
func BuildMonthGrid(anchor time.Time, events []model.Event) MonthGrid {
	year, month := anchor.Year(), anchor.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, anchor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	blanks := int(first.Weekday())

	grid := MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: blanks,
		Cells:         make([]MonthCell, 0, blanks+daysInMonth),
	}

	for i := 0; i < blanks; i++ {
		grid.Cells = append(grid.Cells, MonthCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, anchor.Location())
		grid.Cells = append(grid.Cells, MonthCell{
			Day:    day,
			Date:   date,
			Events: EventsOnDay(events, date),
		})
	}
	return grid
}

// EventsOnDay returns the events whose date falls on the same calendar day
// as day, preserving input order.
func EventsOnDay(events []model.Event, day time.Time) []model.Event {
	var out []model.Event
	for _, e := range events {
		if SameDay(e.Date, day) {
			out = append(out, e)
		}
	}
	return out
}

// SameDay reports whether a and b fall on the same calendar day, compared
// in b's location so the grid builder and the event filter agree.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
