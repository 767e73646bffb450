package cascade

import (
	"context"
	"strings"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/websocket"
	"go.uber.org/zap"
)

// GroupHandler applies the consequences of group lifecycle actions
type GroupHandler struct {
	log *zap.Logger
}

var _ actions.GroupHandler = (*GroupHandler)(nil)

func NewGroupHandler(log *zap.Logger) *GroupHandler {
	return &GroupHandler{log: log}
}

// OnGroupCreated invites every listed user who is not already a member.
// Group.Admin must be loaded; the admin is the sender.
func (h *GroupHandler) OnGroupCreated(ctx context.Context, tx *actions.Tx, a actions.GroupCreated) error {
	group := a.Group
	seen := make(map[string]bool, len(a.InvitedUsernames))

	for _, username := range a.InvitedUsernames {
		username = strings.TrimSpace(username)
		if username == "" || seen[username] || group.HasMember(username) {
			continue
		}
		seen[username] = true

		receiver, err := tx.FindUserByUsername(ctx, username)
		if err != nil {
			return err
		}
		if _, err := IssueInvite(ctx, tx, models.InviteKindGroup, group.ID, group.Name, group.Admin.Username, receiver); err != nil {
			return err
		}
	}

	h.log.Debug("group invites issued", zap.Uint("group_id", group.ID), zap.Int("count", len(seen)))
	return nil
}

// OnGroupDeleted removes every invite pointing at the group or its events and
// tells everyone who knew about the group, except the admin who deleted it.
func (h *GroupHandler) OnGroupDeleted(ctx context.Context, tx *actions.Tx, a actions.GroupDeleted) error {
	group := a.Group

	pending, err := tx.FindInvitesByKindAndTarget(ctx, models.InviteKindGroup, group.ID)
	if err != nil {
		return err
	}

	groupInvites, err := tx.DeleteInvitesByKindAndTargets(ctx, models.InviteKindGroup, []uint{group.ID})
	if err != nil {
		return err
	}
	eventInvites, err := tx.DeleteInvitesByKindAndTargets(ctx, models.InviteKindEvent, group.EventIDs())
	if err != nil {
		return err
	}

	var audience []string
	seen := map[string]bool{group.Admin.Username: true}
	for _, invite := range pending {
		if !seen[invite.Receiver.Username] {
			seen[invite.Receiver.Username] = true
			audience = append(audience, invite.Receiver.Username)
		}
	}
	for _, member := range group.Members {
		if !seen[member.Username] {
			seen[member.Username] = true
			audience = append(audience, member.Username)
		}
	}

	notice := GroupNotice{GroupID: group.ID, GroupName: group.Name}
	for _, username := range audience {
		tx.Notify.SendToUser(username, websocket.ChannelGroupDeleted, notice)
	}
	for _, member := range group.Members {
		tx.Notify.UnsubscribeUser(group.ID, member.Username)
	}

	h.log.Info("group deleted",
		zap.Uint("group_id", group.ID),
		zap.Int64("group_invites_removed", groupInvites),
		zap.Int64("event_invites_removed", eventInvites),
		zap.Int("notified", len(audience)))
	return nil
}

// OnGroupLeft drops the leaver's invites to the group's events and announces
// the departure on the group channel. Group.Events must be loaded.
func (h *GroupHandler) OnGroupLeft(ctx context.Context, tx *actions.Tx, a actions.GroupLeft) error {
	removed, err := tx.DeleteInvitesByReceiverAndKindAndTargets(ctx, a.User.ID, models.InviteKindEvent, a.Group.EventIDs())
	if err != nil {
		return err
	}

	tx.Notify.UnsubscribeUser(a.Group.ID, a.User.Username)
	tx.Notify.BroadcastToGroup(a.Group.ID, websocket.TypeUserLeft, MemberNotice{
		GroupID:  a.Group.ID,
		Username: a.User.Username,
	})

	h.log.Info("user left group",
		zap.Uint("group_id", a.Group.ID),
		zap.String("username", a.User.Username),
		zap.Int64("event_invites_removed", removed))
	return nil
}
