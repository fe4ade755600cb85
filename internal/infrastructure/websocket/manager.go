package websocket

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"

	"shareheart/pkg/logger"
)

var ErrManagerStopped = stderrors.New("websocket manager stopped")

// FrameHandler handles every inbound frame except ping.
type FrameHandler interface {
	HandleFrame(ctx context.Context, client *Client, frame *Frame) error
}

type Stats struct {
	Connections int `json:"connections"`
	Rooms       int `json:"rooms"`
}

// Manager owns the live connections, one per user, and the per-conversation
// subscriber sets that new messages are routed to.
type Manager struct {
	clients       map[string]*Client
	conversations map[string]map[*Client]bool
	register      chan *Client
	unregister    chan *Client
	done          chan struct{}
	handler       FrameHandler
	sendBuffer    int
	mutex         sync.RWMutex
}

func NewManager(sendBuffer int) *Manager {
	if sendBuffer <= 0 {
		sendBuffer = 256
	}
	return &Manager{
		clients:       make(map[string]*Client),
		conversations: make(map[string]map[*Client]bool),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		done:          make(chan struct{}),
		sendBuffer:    sendBuffer,
	}
}

func (m *Manager) SetFrameHandler(h FrameHandler) {
	m.mutex.Lock()
	m.handler = h
	m.mutex.Unlock()
}

// Start runs the register/unregister loop until ctx is cancelled, at which
// point every connection is closed.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.register:
				m.mutex.Lock()
				if old, ok := m.clients[client.UserID]; ok && old != client {
					m.removeClient(old)
					logger.Info("WebSocket connection replaced for user %s", client.UserID)
				}
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Debug("WebSocket client registered: %s", client.UserID)

			case client := <-m.unregister:
				m.mutex.Lock()
				m.removeClient(client)
				m.mutex.Unlock()
				logger.Debug("WebSocket client unregistered: %s", client.UserID)

			case <-ctx.Done():
				m.mutex.Lock()
				for _, client := range m.clients {
					m.removeClient(client)
				}
				m.mutex.Unlock()
				close(m.done)
				logger.Info("WebSocket manager stopped")
				return
			}
		}
	}()
}

func (m *Manager) Register(client *Client) error {
	select {
	case m.register <- client:
		return nil
	case <-m.done:
		return ErrManagerStopped
	}
}

func (m *Manager) Unregister(client *Client) {
	select {
	case m.unregister <- client:
	case <-m.done:
	}
}

// removeClient must be called with the write lock held. Closing Send makes
// the write pump send a close frame and drop the connection.
func (m *Manager) removeClient(c *Client) {
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)

	if m.clients[c.UserID] == c {
		delete(m.clients, c.UserID)
	}
	for conversationID := range c.conversations {
		m.detach(conversationID, c)
	}
}

func (m *Manager) detach(conversationID string, c *Client) {
	delete(c.conversations, conversationID)
	if subs, ok := m.conversations[conversationID]; ok {
		delete(subs, c)
		if len(subs) == 0 {
			delete(m.conversations, conversationID)
		}
	}
}

// Subscribe routes the conversation's messages to c. It reports false if c is closed.
func (m *Manager) Subscribe(conversationID string, c *Client) bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if c.closed {
		return false
	}
	subs, ok := m.conversations[conversationID]
	if !ok {
		subs = make(map[*Client]bool)
		m.conversations[conversationID] = subs
	}
	subs[c] = true
	c.conversations[conversationID] = true
	return true
}

func (m *Manager) Unsubscribe(conversationID string, c *Client) {
	m.mutex.Lock()
	m.detach(conversationID, c)
	m.mutex.Unlock()
}

// PublishToConversation delivers frame to the conversation's subscribers and
// returns the ids of the users it reached.
func (m *Manager) PublishToConversation(conversationID string, frame *Frame) map[string]bool {
	m.mutex.RLock()
	targets := make([]*Client, 0, len(m.conversations[conversationID]))
	for c := range m.conversations[conversationID] {
		targets = append(targets, c)
	}
	m.mutex.RUnlock()

	return m.deliver(targets, frame)
}

// SendToUser delivers frame to the user's live connection, if any.
func (m *Manager) SendToUser(userID string, frame *Frame) bool {
	m.mutex.RLock()
	c, ok := m.clients[userID]
	m.mutex.RUnlock()
	if !ok {
		return false
	}

	return m.deliver([]*Client{c}, frame)[userID]
}

func (m *Manager) SendToClient(c *Client, frame *Frame) {
	m.deliver([]*Client{c}, frame)
}

// deliver never blocks. Closed clients are skipped and clients whose buffer
// is full are dropped once the read lock is released.
func (m *Manager) deliver(targets []*Client, frame *Frame) map[string]bool {
	reached := make(map[string]bool, len(targets))
	if len(targets) == 0 {
		return reached
	}

	payload, err := json.Marshal(frame)
	if err != nil {
		logger.Error("WebSocket failed to encode %s frame: %v", frame.Type, err)
		return reached
	}

	var slow []*Client
	m.mutex.RLock()
	for _, c := range targets {
		if c.closed {
			continue
		}
		select {
		case c.Send <- payload:
			reached[c.UserID] = true
		default:
			slow = append(slow, c)
		}
	}
	m.mutex.RUnlock()

	if len(slow) > 0 {
		m.mutex.Lock()
		for _, c := range slow {
			logger.Warn("WebSocket dropping slow client %s", c.UserID)
			m.removeClient(c)
		}
		m.mutex.Unlock()
	}

	return reached
}

func (m *Manager) IsConnected(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}

func (m *Manager) Stats() Stats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return Stats{
		Connections: len(m.clients),
		Rooms:       len(m.conversations),
	}
}
