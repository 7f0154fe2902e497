// Package fixtures seeds the session-local collections (folders,
// invitations, calendar events) at startup. Server-backed collections are
// populated by the first fetch instead.
package fixtures

import (
	"time"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

// Seed populates the local-only collections with starter data.
func Seed(st *state.AppState) {
	seedFolders(st)
	seedInvitations(st)
	seedEvents(st)
}

func seedFolders(st *state.AppState) {
	st.Projects.AddFolder("Active Projects", "#3B82F6")
	st.Projects.AddFolder("Development", "#10B981")
}

func seedInvitations(st *state.AppState) {
	st.Teams.SendInvitation(model.Invitation{
		Email:   "john.doe@example.com",
		Status:  model.InvitationAccepted,
		Role:    model.RoleMember,
		Message: "Welcome aboard!",
	})
	st.Teams.SendInvitation(model.Invitation{
		Email:   "jane.smith@example.com",
		Status:  model.InvitationPending,
		Role:    model.RoleMember,
		Message: "Join us and help build amazing products!",
	})
	st.Teams.SendInvitation(model.Invitation{
		Email:  "bob.wilson@example.com",
		Status: model.InvitationDeclined,
		Role:   model.RoleViewer,
	})
}

func seedEvents(st *state.AppState) {
	base := time.Now()
	monthStart := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, base.Location())

	events := []model.Event{
		{
			Title:        "Instagram Post: Launch Teaser",
			Type:         model.EventTypeInstagramPost,
			Date:         monthStart.AddDate(0, 0, 4),
			Time:         "10:00",
			Duration:     "2 hours",
			Status:       model.EventStatusCompleted,
			Color:        "#3B82F6",
			Participants: 2,
			Description:  "Create the launch teaser post",
		},
		{
			Title:        "New Website Header Image",
			Type:         model.EventTypeWebsite,
			Date:         monthStart.AddDate(0, 0, 11),
			Time:         "09:30",
			Duration:     "4 hours",
			Status:       model.EventStatusInProgress,
			Color:        "#8B5CF6",
			Participants: 1,
			Description:  "Design and implement the new header image",
		},
		{
			Title:        "New Pricing Page",
			Type:         model.EventTypePricingPage,
			Date:         monthStart.AddDate(0, 0, 14),
			Time:         "11:00",
			Duration:     "6 hours",
			Status:       model.EventStatusInProgress,
			Color:        "#10B981",
			Participants: 2,
			Description:  "Redesign pricing with the new subscription tiers",
		},
		{
			Title:        "Design Review: All Pages",
			Type:         model.EventTypeDesign,
			Date:         monthStart.AddDate(0, 0, 16),
			Time:         "10:30",
			Duration:     "8 hours",
			Status:       model.EventStatusInProgress,
			Color:        "#14B8A6",
			Participants: 3,
			Description:  "Full design pass over the platform pages",
		},
		{
			Title:        "Platform Page Testing",
			Type:         model.EventTypePlatform,
			Date:         monthStart.AddDate(0, 0, 17),
			Time:         "13:00",
			Duration:     "5 hours",
			Status:       model.EventStatusUpcoming,
			Color:        "#6366F1",
			Participants: 2,
			Description:  "Comprehensive testing of all platform pages",
		},
		{
			Title:        "Portfolio Presentation",
			Type:         model.EventTypePresentation,
			Date:         monthStart.AddDate(0, 0, 19),
			Time:         "16:00",
			Duration:     "2 hours",
			Status:       model.EventStatusUpcoming,
			Color:        "#F59E0B",
			Participants: 4,
			Description:  "Prepare the portfolio showcase presentation",
		},
	}

	for _, e := range events {
		st.Calendar.AddEvent(e)
	}
}
