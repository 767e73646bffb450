package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"go.uber.org/zap"
)

// GroupPayload addresses a group channel
type GroupPayload struct {
	GroupID uint `json:"group_id"`
}

// ChatPayload is a chat line sent by a client
type ChatPayload struct {
	GroupID uint   `json:"group_id"`
	Content string `json:"content"`
}

// handleIncoming processes one frame read from a client
func (h *Hub) handleIncoming(c *Client, msg Message) {
	ctx := context.Background()

	switch msg.Type {
	case "ping":
		c.push(envelope("pong", "", nil))
	case "subscribe":
		var payload GroupPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.GroupID == 0 {
			c.sendError("group_id is required")
			return
		}
		if err := h.requireMember(ctx, c.username, payload.GroupID); err != nil {
			h.reject(c, "subscribe", err)
			return
		}
		h.joinGroup(c, payload.GroupID)
		c.push(envelope("subscribed", GroupChannel(payload.GroupID), payload))
	case "unsubscribe":
		var payload GroupPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("group_id is required")
			return
		}
		h.leaveGroup(c, payload.GroupID)
	case "chat":
		var payload ChatPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.GroupID == 0 {
			c.sendError("group_id is required")
			return
		}
		h.handleChat(ctx, c, payload)
	case "accept_invite", "decline_invite":
		var payload struct {
			InviteID uint `json:"invite_id"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.InviteID == 0 {
			c.sendError("invite_id is required")
			return
		}
		h.handleInviteResponse(ctx, c, payload.InviteID, msg.Type == "accept_invite")
	default:
		c.sendError("unknown message type " + msg.Type)
	}
}

// handleChat persists and broadcasts a chat line. Membership is checked
// against the store on every message, not cached from subscribe time.
func (h *Hub) handleChat(ctx context.Context, c *Client, payload ChatPayload) {
	content := strings.TrimSpace(payload.Content)
	if content == "" {
		c.sendError("Message content cannot be empty")
		return
	}
	if err := h.requireMember(ctx, c.username, payload.GroupID); err != nil {
		h.reject(c, "chat", err)
		return
	}

	message := models.Message{
		Content:        content,
		GroupID:        payload.GroupID,
		SenderUsername: c.username,
	}
	if err := h.store.CreateMessage(ctx, &message); err != nil {
		h.log.Error("save chat message", zap.Uint("group_id", payload.GroupID), zap.Error(err))
		c.sendError("Failed to save message")
		return
	}

	h.broadcast(payload.GroupID, ChatChannel(payload.GroupID), TypeChat, message)
}

func (h *Hub) handleInviteResponse(ctx context.Context, c *Client, inviteID uint, accepted bool) {
	if h.responder == nil {
		c.sendError("invite responses are not available")
		return
	}
	if err := h.responder.Respond(ctx, c.username, inviteID, accepted); err != nil {
		h.reject(c, "respond to invite", err)
		return
	}
	c.push(envelope("invite_answered", ChannelInvites, map[string]any{
		"invite_id": inviteID,
		"accepted":  accepted,
	}))
}

func (h *Hub) requireMember(ctx context.Context, username string, groupID uint) error {
	user, err := h.store.FindUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	ok, err := h.store.IsGroupMember(ctx, groupID, user.ID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.Forbidden("not a member of group %d", groupID)
	}
	return nil
}

// reject reports err to the client; classified errors carry their message,
// anything else is logged and hidden
func (h *Hub) reject(c *Client, op string, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.sendError(appErr.Message)
		return
	}
	h.log.Error(op+" failed", zap.String("username", c.username), zap.Error(err))
	c.sendError("internal error")
}
