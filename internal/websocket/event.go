package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents the type of event (created, claimed, deleted)
type EventType string

const (
	EventTypeCreated EventType = "created"
	EventTypeClaimed EventType = "claimed"
	EventTypeDeleted EventType = "deleted"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeWish EntityType = "wish"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "wish.claimed"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "wish"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// WishCreated creates a wish.created event
func WishCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeWish, payload)
}

// WishClaimed creates a wish.claimed event
func WishClaimed(payload interface{}) Event {
	return NewEvent(EventTypeClaimed, EntityTypeWish, payload)
}

// WishDeleted creates a wish.deleted event
func WishDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeWish, payload)
}
