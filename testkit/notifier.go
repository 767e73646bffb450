package testkit

import (
	"sync"

	"github.com/ievamoo/get2gether/websocket"
)

// Sent is one recorded user notification
type Sent struct {
	Username string
	Channel  string
	Payload  any
}

// Broadcast is one recorded group broadcast
type Broadcast struct {
	GroupID uint
	Type    string
	Payload any
}

// Unsubscribe is one recorded channel detach
type Unsubscribe struct {
	GroupID  uint
	Username string
}

// Recorder is a Notifier that remembers everything it was asked to deliver
type Recorder struct {
	mu           sync.Mutex
	sent         []Sent
	broadcasts   []Broadcast
	unsubscribes []Unsubscribe
}

var _ websocket.Notifier = (*Recorder)(nil)

func (r *Recorder) SendToUser(username, channel string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Sent{Username: username, Channel: channel, Payload: payload})
}

func (r *Recorder) BroadcastToGroup(groupID uint, msgType string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcasts = append(r.broadcasts, Broadcast{GroupID: groupID, Type: msgType, Payload: payload})
}

func (r *Recorder) UnsubscribeUser(groupID uint, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unsubscribes = append(r.unsubscribes, Unsubscribe{GroupID: groupID, Username: username})
}

// Sent returns a copy of the recorded user notifications
func (r *Recorder) Sent() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// SentTo returns the notifications addressed to username on channel
func (r *Recorder) SentTo(username, channel string) []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Sent
	for _, s := range r.sent {
		if s.Username == username && s.Channel == channel {
			out = append(out, s)
		}
	}
	return out
}

// Broadcasts returns a copy of the recorded group broadcasts
func (r *Recorder) Broadcasts() []Broadcast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Broadcast(nil), r.broadcasts...)
}

// Unsubscribes returns a copy of the recorded channel detaches
func (r *Recorder) Unsubscribes() []Unsubscribe {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Unsubscribe(nil), r.unsubscribes...)
}

// Reset forgets everything recorded so far
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
	r.broadcasts = nil
	r.unsubscribes = nil
}
