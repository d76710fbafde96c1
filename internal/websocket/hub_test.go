package websocket

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockClient is a test double for Client that captures sent messages
type mockClient struct {
	id       string
	messages [][]byte
	mu       sync.Mutex
	closed   bool
}

func newMockClient(id string) *mockClient {
	return &mockClient{
		id:       id,
		messages: make([][]byte, 0),
	}
}

func (m *mockClient) ID() string {
	return m.id
}

func (m *mockClient) Send(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClientClosed
	}
	m.messages = append(m.messages, data)
	return nil
}

func (m *mockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockClient) GetMessages() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([][]byte, len(m.messages))
	copy(copied, m.messages)
	return copied
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")

	hub.Register(client1)
	hub.Register(client2)
	assert.Equal(t, 2, hub.ClientCount())

	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	// Unregistering twice is harmless
	hub.Unregister(client1)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister(client2)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()

	client1 := newMockClient("client-1")
	client2 := newMockClient("client-2")
	hub.Register(client1)
	hub.Register(client2)

	event := WishClaimed(map[string]interface{}{"id": "abc", "takenBy": "Ana"})
	hub.Broadcast(event)

	// Sends happen on separate goroutines
	require.Eventually(t, func() bool {
		return len(client1.GetMessages()) == 1 && len(client2.GetMessages()) == 1
	}, time.Second, 10*time.Millisecond)

	var received Event
	require.NoError(t, json.Unmarshal(client1.GetMessages()[0], &received))
	assert.Equal(t, "wish.claimed", received.Type)
	assert.Equal(t, EntityTypeWish, received.Entity)
}

func TestHub_BroadcastWithNoClients(t *testing.T) {
	hub := NewHub()

	// Should not panic
	hub.Broadcast(WishCreated(map[string]interface{}{"id": "abc"}))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_BroadcastSkipsClosedClients(t *testing.T) {
	hub := NewHub()

	client := newMockClient("client-1")
	hub.Register(client)
	require.NoError(t, client.Close())

	// Closed client refuses the send; the hub just logs and moves on
	hub.Broadcast(WishDeleted(map[string]string{"id": "abc"}))

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, client.GetMessages())
}
