package model

import "time"

// EventType categorizes the content a calendar event is about.
type EventType string

const (
	EventTypeInstagramPost EventType = "instagram-post"
	EventTypeWebsite       EventType = "website"
	EventTypePricingPage   EventType = "pricing-page"
	EventTypePresentation  EventType = "presentation"
	EventTypePlatform      EventType = "platform"
	EventTypeDesign        EventType = "design"
)

// EventStatus is the progress state of a calendar event.
type EventStatus string

const (
	EventStatusCompleted  EventStatus = "completed"
	EventStatusInProgress EventStatus = "in-progress"
	EventStatusUpcoming   EventStatus = "upcoming"
)

// Event is a scheduled entry on the project calendar. Events exist only in
// local session state; there is no wire format for them.
type Event struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Type  EventType   `json:"type"`
	Date  time.Time   `json:"date"`
	Time  string      `json:"time"`
	// Duration is free text, e.g. "2 hours".
	Duration string      `json:"duration"`
	Status   EventStatus `json:"status"`
	Color    string      `json:"color"`

	Participants int    `json:"participants,omitempty"`
	Description  string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements state.Entity.
func (e Event) EntityID() string { return e.ID }
