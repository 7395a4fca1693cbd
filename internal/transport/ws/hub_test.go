package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestNotifyUserDeliversToConnection(t *testing.T) {
	h := NewFeedHub()
	conn := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	h.Register(conn)

	h.NotifyUser("u1", "score_updated", map[string]int{"chaosScore": 82})

	msg := receive(t, conn)
	assert.Equal(t, MsgScoreUpdated, msg.Type)
	assert.JSONEq(t, `{"chaosScore":82}`, string(msg.Payload))
}

func TestNotifyUserUnknownUserIsDropped(t *testing.T) {
	h := NewFeedHub()
	conn := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	h.Register(conn)

	h.NotifyUser("someone-else", "score_updated", map[string]int{"chaosScore": 10})
	h.NotifyUser("u1", "recommendations_refreshed", map[string]int{"count": 3})

	// Only the addressed message arrives
	msg := receive(t, conn)
	assert.Equal(t, MsgRecommendationsRefreshed, msg.Type)
	assert.Empty(t, conn.Send)
}

func TestNotifyUserUnmarshalablePayloadIsDropped(t *testing.T) {
	h := NewFeedHub()
	conn := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	h.Register(conn)

	// Channels cannot be marshaled; the notify must be dropped whole,
	// never delivered with an empty payload
	h.NotifyUser("u1", "score_updated", make(chan int))
	h.NotifyUser("u1", "score_updated", map[string]int{"chaosScore": 55})

	msg := receive(t, conn)
	assert.Equal(t, MsgScoreUpdated, msg.Type)
	assert.JSONEq(t, `{"chaosScore":55}`, string(msg.Payload))
	assert.Empty(t, conn.Send)
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	h := NewFeedHub()
	stale := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	h.Register(stale)
	fresh := &Connection{UserID: "u1", Send: make(chan []byte, 4), Hub: h}
	h.Register(fresh)

	// The stale connection's send channel is closed on replacement
	select {
	case _, open := <-stale.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("stale connection not closed")
	}

	h.NotifyUser("u1", "score_updated", map[string]int{"chaosScore": 40})
	msg := receive(t, fresh)
	assert.Equal(t, MsgScoreUpdated, msg.Type)
}
