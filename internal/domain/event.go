package domain

import "time"

// EventType names a lifecycle transition.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventRemoved EventType = "removed"
)

// Event is published after a mutation has been committed.
type Event struct {
	Type   EventType `json:"type"`
	Kind   Kind      `json:"kind"`
	ID     int64     `json:"id"`
	Entity any       `json:"entity,omitempty"`
	At     time.Time `json:"at"`
}
