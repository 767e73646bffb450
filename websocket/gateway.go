package websocket

import "fmt"

// Per-user channels
const (
	ChannelInvites      = "invites"
	ChannelGroupDeleted = "group-deleted"
	ChannelEventDeleted = "event-deleted"
)

// Message types broadcast on a group channel
const (
	TypeUserJoined = "user-joined"
	TypeUserLeft   = "user-left"
	TypeChat       = "chat"
)

// GroupChannel names the shared channel of a group
func GroupChannel(groupID uint) string {
	return fmt.Sprintf("group/%d", groupID)
}

// ChatChannel names the chat sub-channel of a group
func ChatChannel(groupID uint) string {
	return GroupChannel(groupID) + "/chat"
}

// Notifier pushes real-time messages. Delivery is best-effort and at most
// once: a recipient without a live connection misses the message and the
// caller is never told.
type Notifier interface {
	SendToUser(username, channel string, payload any)
	BroadcastToGroup(groupID uint, msgType string, payload any)
	// UnsubscribeUser detaches every connection of username from the group
	// channel, for members who are no longer in the group
	UnsubscribeUser(groupID uint, username string)
}

// Outbox collects notifications raised inside a transaction and releases them
// only after commit. It is owned by a single request and is not safe for
// concurrent use.
type Outbox struct {
	target  Notifier
	pending []func(Notifier)
}

var _ Notifier = (*Outbox)(nil)

func NewOutbox(target Notifier) *Outbox {
	return &Outbox{target: target}
}

func (o *Outbox) SendToUser(username, channel string, payload any) {
	o.pending = append(o.pending, func(n Notifier) {
		n.SendToUser(username, channel, payload)
	})
}

func (o *Outbox) BroadcastToGroup(groupID uint, msgType string, payload any) {
	o.pending = append(o.pending, func(n Notifier) {
		n.BroadcastToGroup(groupID, msgType, payload)
	})
}

func (o *Outbox) UnsubscribeUser(groupID uint, username string) {
	o.pending = append(o.pending, func(n Notifier) {
		n.UnsubscribeUser(groupID, username)
	})
}

// Len reports how many notifications are waiting
func (o *Outbox) Len() int {
	return len(o.pending)
}

// Flush delivers the queued notifications in the order they were raised
func (o *Outbox) Flush() {
	pending := o.pending
	o.pending = nil
	for _, send := range pending {
		send(o.target)
	}
}

// Discard drops everything queued so far
func (o *Outbox) Discard() {
	o.pending = nil
}
