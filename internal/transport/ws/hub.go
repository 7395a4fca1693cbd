package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgScoreUpdated             MessageType = "score_updated"
	MsgRecommendationsRefreshed MessageType = "recommendations_refreshed"
	MsgError                    MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// FeedHub manages WebSocket feed connections, one per user
type FeedHub struct {
	conns map[string]*Connection // userID -> conn

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	notify     chan *NotifyMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
	Hub    *FeedHub
}

// NotifyMessage is a message addressed to a single user
type NotifyMessage struct {
	UserID  string
	Message *Message
}

// NewFeedHub creates a new feed hub
func NewFeedHub() *FeedHub {
	h := &FeedHub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		notify:     make(chan *NotifyMessage, 256),
	}
	go h.run()
	return h
}

func (h *FeedHub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			// A new connection for the same user replaces the old one
			if existing, ok := h.conns[conn.UserID]; ok {
				close(existing.Send)
			}
			h.conns[conn.UserID] = conn
			log.Printf("User %s connected to feed", conn.UserID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.conns[conn.UserID]; ok && existing == conn {
				delete(h.conns, conn.UserID)
				close(conn.Send)
				log.Printf("User %s disconnected from feed", conn.UserID)
			}
			h.mu.Unlock()

		case msg := <-h.notify:
			h.mu.RLock()
			if conn, ok := h.conns[msg.UserID]; ok {
				data, err := json.Marshal(msg.Message)
				if err != nil {
					log.Printf("feed message marshal failed for user %s: %v", msg.UserID, err)
					h.mu.RUnlock()
					continue
				}
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *FeedHub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *FeedHub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// NotifyUser sends a message to a connected user (implements service.FeedNotifier)
func (h *FeedHub) NotifyUser(userID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("feed payload marshal failed for user %s event %s: %v", userID, msgType, err)
		return
	}
	h.notify <- &NotifyMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
