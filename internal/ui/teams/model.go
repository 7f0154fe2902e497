// Package teams renders the team roster: team cards with derived member
// counts, the member directory, and the invitation pipeline including the
// waiting list.
package teams

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/theme"
	"github.com/nhle/projectflow/internal/views"
)

// section identifies which roster panel has focus.
type section int

const (
	sectionTeams section = iota
	sectionMembers
	sectionInvitations
)

// NewTeamMsg asks the app to open the create-team form.
type NewTeamMsg struct{}

// EditTeamMsg asks the app to open the edit form for a team.
type EditTeamMsg struct {
	ID string
}

// DeleteTeamMsg asks the app to delete a team.
type DeleteTeamMsg struct {
	ID string
}

// NewUserMsg asks the app to open the create-member form.
type NewUserMsg struct{}

// EditUserMsg asks the app to open the edit form for a member.
type EditUserMsg struct {
	ID string
}

// DeleteUserMsg asks the app to delete a member.
type DeleteUserMsg struct {
	ID string
}

// InviteMsg asks the app to open the invitation form.
type InviteMsg struct{}

// Model is the teams view component.
type Model struct {
	state   *state.AppState
	keys    *keys.KeyMap
	focus   section
	cursors [3]int
	width   int
	height  int
}

// New creates a new teams model.
func New(st *state.AppState, k *keys.KeyMap, width, height int) Model {
	return Model{
		state:  st,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model; the screen reads stores directly.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the teams view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Left):
		if m.focus > sectionTeams {
			m.focus--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.focus < sectionInvitations {
			m.focus++
		}

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursors[m.focus] > 0 {
			m.cursors[m.focus]--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursors[m.focus] < m.sectionLen(m.focus)-1 {
			m.cursors[m.focus]++
		}

	case key.Matches(keyMsg, m.keys.New):
		switch m.focus {
		case sectionTeams:
			return m, func() tea.Msg { return NewTeamMsg{} }
		case sectionMembers:
			return m, func() tea.Msg { return NewUserMsg{} }
		case sectionInvitations:
			return m, func() tea.Msg { return InviteMsg{} }
		}

	case key.Matches(keyMsg, m.keys.Edit):
		switch m.focus {
		case sectionTeams:
			if t, ok := m.selectedTeam(); ok {
				id := t.ID
				return m, func() tea.Msg { return EditTeamMsg{ID: id} }
			}
		case sectionMembers:
			if u, ok := m.selectedUser(); ok {
				id := u.ID
				return m, func() tea.Msg { return EditUserMsg{ID: id} }
			}
		}

	case key.Matches(keyMsg, m.keys.Delete):
		switch m.focus {
		case sectionTeams:
			if t, ok := m.selectedTeam(); ok {
				id := t.ID
				return m, func() tea.Msg { return DeleteTeamMsg{ID: id} }
			}
		case sectionMembers:
			if u, ok := m.selectedUser(); ok {
				id := u.ID
				return m, func() tea.Msg { return DeleteUserMsg{ID: id} }
			}
		case sectionInvitations:
			if inv, ok := m.selectedInvitation(); ok {
				m.state.Teams.RemoveInvitation(inv.ID)
				m.clampCursors()
			}
		}

	case key.Matches(keyMsg, m.keys.Select):
		if m.focus == sectionInvitations {
			m.handleInvitationSelect()
		}
	}

	return m, nil
}

// handleInvitationSelect accepts a pending invitation, or assigns an
// accepted waiting-list invitation to the currently selected team.
func (m *Model) handleInvitationSelect() {
	inv, ok := m.selectedInvitation()
	if !ok {
		return
	}

	switch {
	case inv.Status == model.InvitationPending:
		m.state.Teams.AcceptInvitation(inv.ID, model.User{
			Name:     inviteeName(inv.Email),
			Email:    inv.Email,
			IsActive: true,
		})

	case inv.Status == model.InvitationAccepted && inv.TeamID == "":
		if t, ok := m.selectedTeam(); ok {
			m.state.Teams.AssignInvitationToTeam(inv.ID, t.ID)
		}
	}
}

func (m Model) selectedTeam() (model.Team, bool) {
	teams := m.state.Teams.Teams.Items()
	i := m.cursors[sectionTeams]
	if i < 0 || i >= len(teams) {
		return model.Team{}, false
	}
	return teams[i], true
}

func (m Model) selectedUser() (model.User, bool) {
	users := m.state.Teams.Users.Items()
	i := m.cursors[sectionMembers]
	if i < 0 || i >= len(users) {
		return model.User{}, false
	}
	return users[i], true
}

func (m Model) selectedInvitation() (model.Invitation, bool) {
	invs := m.state.Teams.Invitations.Items()
	i := m.cursors[sectionInvitations]
	if i < 0 || i >= len(invs) {
		return model.Invitation{}, false
	}
	return invs[i], true
}

func (m Model) sectionLen(s section) int {
	switch s {
	case sectionTeams:
		return m.state.Teams.Teams.Len()
	case sectionMembers:
		return m.state.Teams.Users.Len()
	default:
		return m.state.Teams.Invitations.Len()
	}
}

// clampCursors keeps every cursor inside its section after removals.
func (m *Model) clampCursors() {
	for s := sectionTeams; s <= sectionInvitations; s++ {
		if n := m.sectionLen(s); m.cursors[s] >= n && n > 0 {
			m.cursors[s] = n - 1
		} else if n == 0 {
			m.cursors[s] = 0
		}
	}
}

// View renders the three roster panels side by side.
func (m Model) View() string {
	panelWidth := m.width/3 - 4
	if panelWidth < 24 {
		panelWidth = 24
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTeams(panelWidth),
		m.renderMembers(panelWidth),
		m.renderInvitations(panelWidth),
	)
}

func (m Model) renderTeams(width int) string {
	resolver := views.Resolver{State: m.state}
	lines := []string{m.sectionTitle("Teams", sectionTeams)}

	teams := m.state.Teams.Teams.Items()
	if len(teams) == 0 {
		lines = append(lines, theme.HelpStyle.Render("no teams yet"))
	}
	for i, t := range teams {
		count := resolver.MemberCount(t.ID)
		line := fmt.Sprintf("%s %s", t.Name,
			theme.HelpStyle.Render(fmt.Sprintf("(%d members)", count)))
		if t.LeaderID != "" {
			line += theme.HelpStyle.Render(" lead " + resolver.UserName(t.LeaderID))
		}
		lines = append(lines, m.cursorLine(line, sectionTeams, i))
	}

	return m.panel(width, sectionTeams, lines)
}

func (m Model) renderMembers(width int) string {
	resolver := views.Resolver{State: m.state}
	lines := []string{m.sectionTitle("Members", sectionMembers)}

	users := m.state.Teams.Users.Items()
	if len(users) == 0 {
		lines = append(lines, theme.HelpStyle.Render("no members yet"))
	}
	for i, u := range users {
		line := fmt.Sprintf("%s %s", u.Name,
			theme.HelpStyle.Render(string(u.Role)))
		if u.TeamID != "" {
			line += theme.HelpStyle.Render(" @ " + resolver.TeamName(u.TeamID))
		}
		if !u.IsActive {
			line += lipgloss.NewStyle().Foreground(theme.ColorRed).Render(" inactive")
		}
		lines = append(lines, m.cursorLine(line, sectionMembers, i))
	}

	return m.panel(width, sectionMembers, lines)
}

func (m Model) renderInvitations(width int) string {
	resolver := views.Resolver{State: m.state}
	lines := []string{m.sectionTitle("Invitations", sectionInvitations)}

	invs := m.state.Teams.Invitations.Items()
	if len(invs) == 0 {
		lines = append(lines, theme.HelpStyle.Render("no invitations"))
	}
	for i, inv := range invs {
		badge := invitationBadge(inv)
		line := fmt.Sprintf("%s %s", badge, inv.Email)
		lines = append(lines, m.cursorLine(line, sectionInvitations, i))
	}

	if waiting := resolver.WaitingList(); len(waiting) > 0 {
		lines = append(lines, "",
			lipgloss.NewStyle().Bold(true).Foreground(theme.ColorYellow).
				Render(fmt.Sprintf("Waiting list (%d)", len(waiting))))
		for _, inv := range waiting {
			lines = append(lines, theme.ListItemStyle.Render(inv.Email))
		}
	}

	return m.panel(width, sectionInvitations, lines)
}

func (m Model) sectionTitle(title string, s section) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorGray)
	if m.focus == s {
		style = style.Foreground(theme.ColorBlue)
	}
	return style.Render(title)
}

func (m Model) cursorLine(line string, s section, index int) string {
	if m.focus == s && m.cursors[s] == index {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

func (m Model) panel(width int, s section, lines []string) string {
	style := theme.PanelStyle.Width(width)
	if m.focus == s {
		style = style.BorderForeground(theme.ColorBlue)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetSize updates the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// invitationBadge renders the status tag for an invitation row.
func invitationBadge(inv model.Invitation) string {
	label := string(inv.Status)
	if inv.Status == model.InvitationAccepted && inv.TeamID == "" {
		label = "waiting"
	}

	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch inv.Status {
	case model.InvitationAccepted:
		return base.Foreground(theme.ColorGreen).Render(label)
	case model.InvitationPending:
		return base.Foreground(theme.ColorYellow).Render(label)
	case model.InvitationDeclined:
		return base.Foreground(theme.ColorRed).Render(label)
	default:
		return base.Foreground(theme.ColorGray).Render(label)
	}
}

// inviteeName derives a placeholder display name from an email address.
func inviteeName(email string) string {
	for i, r := range email {
		if r == '@' {
			return email[:i]
		}
	}
	return email
}
