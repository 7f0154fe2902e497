package state

import (
	"sync"

	"github.com/nhle/projectflow/internal/model"
)

// ViewMode selects how collection screens render their records.
type ViewMode string

const (
	ViewModeList   ViewMode = "list"
	ViewModeTable  ViewMode = "table"
	ViewModeKanban ViewMode = "kanban"
)

// Modal identifies which modal is open and, for edit modals, its target.
// A nil Modal means no modal is open.
type Modal interface {
	modal()
}

// Modal variants. Edit variants carry the target entity's ID so the form
// can load it; create variants carry nothing.
type (
	CreateProjectModal struct{}
	EditProjectModal   struct{ ID string }
	CreateTaskModal    struct{}
	EditTaskModal      struct{ ID string }
	CreateTeamModal    struct{}
	EditTeamModal      struct{ ID string }
	CreateUserModal    struct{}
	EditUserModal      struct{ ID string }
	InviteModal        struct{}
	CreateEventModal   struct{}
	EditEventModal     struct{ ID string }
)

func (CreateProjectModal) modal() {}
func (EditProjectModal) modal()   {}
func (CreateTaskModal) modal()    {}
func (EditTaskModal) modal()      {}
func (CreateTeamModal) modal()    {}
func (EditTeamModal) modal()      {}
func (CreateUserModal) modal()    {}
func (EditUserModal) modal()      {}
func (InviteModal) modal()        {}
func (CreateEventModal) modal()   {}
func (EditEventModal) modal()     {}

// SortOrder is the direction of a sort selection.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// UIStore holds transient view state: the active view mode, the open
// modal, and the search/filter/sort selections shared by the collection
// screens. Nothing here is persisted or synced.
type UIStore struct {
	mu sync.RWMutex

	currentView ViewMode
	activeModal Modal

	searchQuery    string
	filterStatus   *model.TaskStatus
	filterPriority *model.Priority
	filterTeam     *string

	sortBy    string
	sortOrder SortOrder
}

// NewUIStore creates a UI store with the original defaults: table view,
// sorted by most recently updated.
func NewUIStore() *UIStore {
	return &UIStore{
		currentView: ViewModeTable,
		sortBy:      "updated_at",
		sortOrder:   SortDesc,
	}
}

// CurrentView returns the active view mode.
func (s *UIStore) CurrentView() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentView
}

// SetCurrentView switches the active view mode.
func (s *UIStore) SetCurrentView(v ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = v
}

// ActiveModal returns the open modal, or nil.
func (s *UIStore) ActiveModal() Modal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeModal
}

// SetActiveModal opens a modal; pass nil to close.
func (s *UIStore) SetActiveModal(m Modal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = m
}

// SearchQuery returns the current search text.
func (s *UIStore) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SetSearchQuery updates the search text.
func (s *UIStore) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = q
}

// FilterStatus returns the task status filter, nil meaning "all".
func (s *UIStore) FilterStatus() *model.TaskStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterStatus
}

// SetFilterStatus sets the task status filter; nil clears it.
func (s *UIStore) SetFilterStatus(st *model.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterStatus = st
}

// FilterPriority returns the priority filter, nil meaning "all".
func (s *UIStore) FilterPriority() *model.Priority {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterPriority
}

// SetFilterPriority sets the priority filter; nil clears it.
func (s *UIStore) SetFilterPriority(p *model.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterPriority = p
}

// FilterTeam returns the team filter, nil meaning "all".
func (s *UIStore) FilterTeam() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterTeam
}

// SetFilterTeam sets the team filter; nil clears it.
func (s *UIStore) SetFilterTeam(teamID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterTeam = teamID
}

// SortBy returns the sort key.
func (s *UIStore) SortBy() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortBy
}

// SortOrder returns the sort direction.
func (s *UIStore) SortOrder() SortOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortOrder
}

// SetSort updates the sort key and direction together.
func (s *UIStore) SetSort(by string, order SortOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortBy = by
	s.sortOrder = order
}

// ClearFilters zeroes the search text and filter selections while
// preserving the current view and sort.
func (s *UIStore) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = ""
	s.filterStatus = nil
	s.filterPriority = nil
	s.filterTeam = nil
}
