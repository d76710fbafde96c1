package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":    "abc",
		"title": "Blanket",
	}

	before := time.Now()
	evt := NewEvent(EventTypeCreated, EntityTypeWish, payload)
	after := time.Now()

	assert.Equal(t, "wish.created", evt.Type)
	assert.Equal(t, EntityTypeWish, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEventConstructors(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{"created", WishCreated(nil), "wish.created"},
		{"claimed", WishClaimed(nil), "wish.claimed"},
		{"deleted", WishDeleted(nil), "wish.deleted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Type)
			assert.Equal(t, EntityTypeWish, tt.event.Entity)
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	evt := WishClaimed(map[string]interface{}{"id": "abc", "takenBy": "Ana", "quantity": 2})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "wish.claimed", decoded["type"])
	assert.Equal(t, "wish", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Ana", payload["takenBy"])
}
