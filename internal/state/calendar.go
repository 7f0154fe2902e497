package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nhle/projectflow/internal/model"
)

// CalendarViewMode selects how the calendar screen lays out events.
type CalendarViewMode string

const (
	CalendarViewChronology CalendarViewMode = "chronology"
	CalendarViewMonth      CalendarViewMode = "calendar"
)

// EventSort selects the ordering of the chronology listing.
type EventSort string

const (
	EventSortDefault EventSort = "default"
	EventSortDate    EventSort = "date"
	EventSortType    EventSort = "type"
	EventSortStatus  EventSort = "status"
)

// EventPatch is a partial update to a calendar event.
type EventPatch struct {
	Title        *string
	Type         *model.EventType
	Date         *time.Time
	Time         *string
	Duration     *string
	Status       *model.EventStatus
	Color        *string
	Participants *int
	Description  *string
}

// CalendarStore owns the session-local event collection plus the calendar
// screen's navigation state (anchor month, selected day, view mode, sort).
type CalendarStore struct {
	Events *Collection[model.Event]

	mu           sync.RWMutex
	currentDate  time.Time
	selectedDate *time.Time
	viewMode     CalendarViewMode
	sortBy       EventSort
}

// NewCalendarStore creates a calendar store anchored on the current month.
func NewCalendarStore() *CalendarStore {
	return &CalendarStore{
		Events:      NewCollection[model.Event](),
		currentDate: now(),
		viewMode:    CalendarViewMonth,
		sortBy:      EventSortDefault,
	}
}

// AddEvent assigns a fresh ID and creation timestamps and appends the
// event.
func (s *CalendarStore) AddEvent(e model.Event) model.Event {
	ts := now()
	e.ID = uuid.New().String()
	e.CreatedAt = ts
	e.UpdatedAt = ts
	s.Events.Append(e)
	return e
}

// UpdateEvent merges the patch over the event with the given ID and
// refreshes UpdatedAt.
func (s *CalendarStore) UpdateEvent(id string, patch EventPatch) bool {
	return s.Events.Mutate(id, func(e *model.Event) {
		applyEventPatch(e, patch)
		e.UpdatedAt = now()
	})
}

// SetEventStatus updates only the status of an event.
func (s *CalendarStore) SetEventStatus(id string, status model.EventStatus) bool {
	return s.Events.Mutate(id, func(e *model.Event) {
		e.Status = status
		e.UpdatedAt = now()
	})
}

// RemoveEvent deletes an event.
func (s *CalendarStore) RemoveEvent(id string) bool {
	return s.Events.Remove(id)
}

// CurrentDate returns the month the calendar is anchored on.
func (s *CalendarStore) CurrentDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentDate
}

// SetCurrentDate re-anchors the calendar.
func (s *CalendarStore) SetCurrentDate(d time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = d
}

// NavigateMonth moves the anchor by delta months (negative = back).
func (s *CalendarStore) NavigateMonth(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = s.currentDate.AddDate(0, delta, 0)
}

// NavigateYear moves the anchor by delta years (negative = back).
func (s *CalendarStore) NavigateYear(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = s.currentDate.AddDate(delta, 0, 0)
}

// SelectedDate returns the selected day, if any.
func (s *CalendarStore) SelectedDate() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedDate == nil {
		return time.Time{}, false
	}
	return *s.selectedDate, true
}

// SelectDate marks a day as selected.
func (s *CalendarStore) SelectDate(d time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = &d
}

// ClearSelectedDate drops the day selection.
func (s *CalendarStore) ClearSelectedDate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = nil
}

// ViewMode returns the active calendar layout.
func (s *CalendarStore) ViewMode() CalendarViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewMode
}

// SetViewMode switches between chronology and month layouts.
func (s *CalendarStore) SetViewMode(m CalendarViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = m
}

// SortBy returns the chronology sort selection.
func (s *CalendarStore) SortBy() EventSort {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

// SetSortBy changes the chronology sort selection.
func (s *CalendarStore) SetSortBy(sort EventSort) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = sort
}

// applyEventPatch copies the patch's non-nil fields onto e.
func applyEventPatch(e *model.Event, patch EventPatch) {
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Duration != nil {
		e.Duration = *patch.Duration
	}
	if patch.Status != nil {
		e.Status = *patch.Status
	}
	if patch.Color != nil {
		e.Color = *patch.Color
	}
	if patch.Participants != nil {
		e.Participants = *patch.Participants
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
}
