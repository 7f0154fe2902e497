package model

import "time"

// Role is a user's permission level within the workspace.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
	RoleViewer  Role = "viewer"
)

// Team is a named group of users. Membership is derived from User.TeamID;
// the team record itself only names its leader.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	LeaderID    string    `json:"leader_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntityID implements state.Entity.
func (t Team) EntityID() string { return t.ID }

// User is a workspace member.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Avatar     string    `json:"avatar"`
	Role       Role      `json:"role"`
	TeamID     string    `json:"team_id"`
	Department string    `json:"department"`
	IsActive   bool      `json:"is_active"`
	JoinedAt   time.Time `json:"joined_at"`
}

// EntityID implements state.Entity.
func (u User) EntityID() string { return u.ID }

// InvitationStatus is the lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
)

// Invitation is a pending offer to join the workspace. An accepted
// invitation with no TeamID sits on the waiting list until a team is
// assigned.
type Invitation struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	InvitedBy string           `json:"invited_by"`
	InvitedAt time.Time        `json:"invited_at"`
	Status    InvitationStatus `json:"status"`
	Role      Role             `json:"role"`
	TeamID    string           `json:"team_id,omitempty"`
	Message   string           `json:"message,omitempty"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// EntityID implements state.Entity.
func (i Invitation) EntityID() string { return i.ID }
