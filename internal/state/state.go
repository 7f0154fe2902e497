// Package state holds the normalized in-memory collections that mirror the
// ProjectFlow server plus the session-local ones, and the mutation
// operations the rest of the application goes through.
//
// Collections are mutated only by their own store's methods; cross-store
// reads (foreign-key resolution) never mutate another store. Within one
// collection the last asynchronous completion for a given ID wins, except
// that a whole-collection fetch is generation-guarded.
package state

// AppState aggregates every store for one session. It is constructed at
// startup and passed explicitly to the views and the sync layer; there is
// no package-level instance.
type AppState struct {
	Projects *ProjectStore
	Tasks    *TaskStore
	Teams    *TeamStore
	Calendar *CalendarStore
	UI       *UIStore
}

// New creates an empty application state.
func New() *AppState {
	return &AppState{
		Projects: NewProjectStore(),
		Tasks:    NewTaskStore(),
		Teams:    NewTeamStore(),
		Calendar: NewCalendarStore(),
		UI:       NewUIStore(),
	}
}
