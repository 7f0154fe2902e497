// Package sync keeps the server-backed collections up to date by
// periodically re-fetching them through the API façade.
package sync

import (
	"context"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/projectflow/internal/api"
	"github.com/nhle/projectflow/internal/state"
)

// Collection identifies one server-backed collection.
type Collection string

const (
	CollectionProjects Collection = "projects"
	CollectionTasks    Collection = "tasks"
	CollectionTeams    Collection = "teams"
	CollectionMembers  Collection = "members"
)

// RefreshResultMsg is a tea.Msg sent when one collection's fetch
// completes and its result has been applied to the store. Discarded stale
// fetches produce no message.
type RefreshResultMsg struct {
	Collection Collection
	Count      int
	Err        error
}

// fetchTimeout is the maximum time allowed for a single fetch operation.
const fetchTimeout = 30 * time.Second

// Refresher re-fetches the four server-backed collections on an interval
// and on demand. Each fetch is generation-guarded: if a newer fetch of the
// same collection started in the meantime, the older completion is
// discarded instead of applied.
type Refresher struct {
	state    *state.AppState
	facade   *api.Facade
	interval time.Duration

	resultCh  chan RefreshResultMsg
	triggerCh chan struct{}
	stopCh    chan struct{}

	mu      gosync.Mutex
	running bool
}

// New creates a Refresher over the given state and façade.
func New(st *state.AppState, facade *api.Facade, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = 120 * time.Second
	}
	return &Refresher{
		state:     st,
		facade:    facade,
		interval:  interval,
		resultCh:  make(chan RefreshResultMsg, 16),
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
}

// Start launches the refresh loop, performing an immediate first fetch,
// and returns a command that waits for the first result.
func (r *Refresher) Start() tea.Cmd {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = true
	r.mu.Unlock()

	go r.loop()
	return r.waitForResult()
}

// Stop halts the refresh loop.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.running {
		return
	}
	close(r.stopCh)
	r.running = false
}

// RefreshAll triggers an immediate refresh of every collection.
func (r *Refresher) RefreshAll() tea.Cmd {
	select {
	case r.triggerCh <- struct{}{}:
	default:
		// A refresh is already queued.
	}
	return nil
}

// WaitForNextResult returns a command that waits for the next refresh
// result. Call it again after each RefreshResultMsg to keep listening.
func (r *Refresher) WaitForNextResult() tea.Cmd {
	return r.waitForResult()
}

// loop runs the periodic refresh cycle.
func (r *Refresher) loop() {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refreshOnce()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.refreshOnce()
		case <-r.triggerCh:
			r.refreshOnce()
		}
	}
}

// refreshOnce fetches all four collections and applies whichever results
// are still current.
func (r *Refresher) refreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	r.refreshProjects(ctx)
	r.refreshTasks(ctx)
	r.refreshTeams(ctx)
	r.refreshMembers(ctx)
}

func (r *Refresher) refreshProjects(ctx context.Context) {
	gen := r.state.Projects.BeginFetch()
	projects, err := r.facade.FetchProjects(ctx)
	if r.state.Projects.CompleteFetch(gen, projects, err) {
		r.sendResult(RefreshResultMsg{
			Collection: CollectionProjects,
			Count:      len(projects),
			Err:        err,
		})
	}
}

func (r *Refresher) refreshTasks(ctx context.Context) {
	gen := r.state.Tasks.BeginFetch()
	tasks, err := r.facade.FetchTasks(ctx)
	if r.state.Tasks.CompleteFetch(gen, tasks, err) {
		r.sendResult(RefreshResultMsg{
			Collection: CollectionTasks,
			Count:      len(tasks),
			Err:        err,
		})
	}
}

func (r *Refresher) refreshTeams(ctx context.Context) {
	gen := r.state.Teams.Teams.BeginFetch()
	teams, err := r.facade.FetchTeams(ctx)
	if r.state.Teams.Teams.CompleteFetch(gen, teams, err) {
		r.sendResult(RefreshResultMsg{
			Collection: CollectionTeams,
			Count:      len(teams),
			Err:        err,
		})
	}
}

func (r *Refresher) refreshMembers(ctx context.Context) {
	gen := r.state.Teams.Users.BeginFetch()
	users, err := r.facade.FetchUsers(ctx)
	if r.state.Teams.Users.CompleteFetch(gen, users, err) {
		r.sendResult(RefreshResultMsg{
			Collection: CollectionMembers,
			Count:      len(users),
			Err:        err,
		})
	}
}

// sendResult sends a result without blocking the refresh loop.
func (r *Refresher) sendResult(msg RefreshResultMsg) {
	select {
	case r.resultCh <- msg:
	default:
		// Drop if the channel is full to avoid blocking the refresher.
	}
}

// waitForResult returns a command that waits for the next result from the
// result channel.
func (r *Refresher) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-r.resultCh
		if !ok {
			return nil
		}
		return result
	}
}
