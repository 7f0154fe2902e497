package api

// Wire record shapes for the four server-backed collections. Every server
// record carries its own primary key in `_id`; the façade copies it onto
// the local canonical ID field on every read.

// ProjectRecord is a project as it appears on the wire.
type ProjectRecord struct {
	RecordID    string `json:"_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	StartDate   string `json:"startDate"`
	DueDate     string `json:"dueDate"`
	Progress    int    `json:"progress"`
	TeamID      string `json:"teamId"`
	OwnerID     string `json:"ownerId"`
	FolderID    string `json:"folderId,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// TaskRecord is a task as it appears on the wire.
type TaskRecord struct {
	RecordID       string   `json:"_id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Status         string   `json:"status"`
	Priority       string   `json:"priority"`
	ProjectID      string   `json:"projectId"`
	AssigneeID     string   `json:"assigneeId"`
	ReporterID     string   `json:"reporterId"`
	DueDate        string   `json:"dueDate"`
	EstimatedHours float64  `json:"estimatedHours"`
	ActualHours    float64  `json:"actualHours"`
	Tags           []string `json:"tags,omitempty"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// TeamRecord is a team as it appears on the wire. The server also sends a
// memberIds list; it is accepted but never stored locally, since team
// membership is derived from each member's teamId.
type TeamRecord struct {
	RecordID    string   `json:"_id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Color       string   `json:"color"`
	LeaderID    string   `json:"leaderId"`
	MemberIDs   []string `json:"memberIds,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// MemberRecord is a user as it appears on the wire (the server calls the
// collection "member").
type MemberRecord struct {
	RecordID   string `json:"_id,omitempty"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar"`
	Role       string `json:"role"`
	TeamID     string `json:"teamId"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
	JoinedAt   string `json:"joinedAt,omitempty"`
}
