package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ievamoo/get2gether/repositories"
	"go.uber.org/zap"
)

// Verifier resolves a bearer credential to a username
type Verifier interface {
	Verify(token string) (string, error)
}

// InviteResponder answers invites on behalf of a connected user
type InviteResponder interface {
	Respond(ctx context.Context, actor string, inviteID uint, accepted bool) error
}

// Hub maintains the set of active clients and routes messages to them
type Hub struct {
	store     repositories.Store
	verifier  Verifier
	responder InviteResponder
	log       *zap.Logger

	mu      sync.RWMutex
	clients map[*Client]bool
	// username -> live connections of that user
	users map[string]map[*Client]bool
	// groupID -> connections subscribed to the group channel
	groups map[uint]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	done       chan struct{}
}

var _ Notifier = (*Hub)(nil)

// NewHub creates a new hub instance
func NewHub(store repositories.Store, verifier Verifier, log *zap.Logger) *Hub {
	return &Hub{
		store:      store,
		verifier:   verifier,
		log:        log,
		clients:    make(map[*Client]bool),
		users:      make(map[string]map[*Client]bool),
		groups:     make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// SetInviteResponder enables invite answers over the socket
func (h *Hub) SetInviteResponder(r InviteResponder) {
	h.responder = r
}

// Run processes registrations until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.closeAll()
			return
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if h.users[client.username] == nil {
				h.users[client.username] = make(map[*Client]bool)
			}
			h.users[client.username][client] = true
			h.mu.Unlock()

			h.log.Debug("client connected",
				zap.String("username", client.username), zap.String("conn_id", client.id))
			client.push(envelope("connected", "", map[string]string{"username": client.username}))
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	if conns := h.users[client.username]; conns != nil {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.users, client.username)
		}
	}
	for groupID := range client.groups {
		h.leaveGroupLocked(client, groupID)
	}
	h.log.Debug("client disconnected",
		zap.String("username", client.username), zap.String("conn_id", client.id))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.remove(c)
	}
}

// joinGroup subscribes a client to a group channel
func (h *Hub) joinGroup(client *Client, groupID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	if _, ok := h.groups[groupID]; !ok {
		h.groups[groupID] = make(map[*Client]bool)
	}
	h.groups[groupID][client] = true
	client.groups[groupID] = true
}

// leaveGroup unsubscribes a client from a group channel
func (h *Hub) leaveGroup(client *Client, groupID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveGroupLocked(client, groupID)
}

func (h *Hub) leaveGroupLocked(client *Client, groupID uint) {
	delete(client.groups, groupID)
	if clients, ok := h.groups[groupID]; ok {
		delete(clients, client)
		// Clean up empty groups
		if len(clients) == 0 {
			delete(h.groups, groupID)
		}
	}
}

// UnsubscribeUser removes all of username's connections from the group channel
func (h *Hub) UnsubscribeUser(groupID uint, username string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.users[username] {
		h.leaveGroupLocked(client, groupID)
	}
}

// IsOnline reports whether the user has at least one live connection
func (h *Hub) IsOnline(username string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[username]) > 0
}

// SendToUser delivers to every live connection of username. Offline users
// miss the message.
func (h *Hub) SendToUser(username, channel string, payload any) {
	data, err := json.Marshal(envelope("notification", channel, payload))
	if err != nil {
		h.log.Error("marshal notification", zap.String("channel", channel), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := h.users[username]
	if len(conns) == 0 {
		h.log.Debug("notification dropped, user offline",
			zap.String("username", username), zap.String("channel", channel))
		return
	}
	for client := range conns {
		h.deliver(client, data)
	}
}

// BroadcastToGroup delivers to the connections currently subscribed to the
// group channel
func (h *Hub) BroadcastToGroup(groupID uint, msgType string, payload any) {
	h.broadcast(groupID, GroupChannel(groupID), msgType, payload)
}

func (h *Hub) broadcast(groupID uint, channel, msgType string, payload any) {
	data, err := json.Marshal(envelope(msgType, channel, payload))
	if err != nil {
		h.log.Error("marshal broadcast", zap.String("channel", channel), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.groups[groupID] {
		h.deliver(client, data)
	}
}

// deliver must be called with h.mu held
func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		h.log.Warn("send buffer full, message dropped",
			zap.String("username", client.username), zap.String("conn_id", client.id))
	}
}
