// Package cascade keeps groups, events and invites consistent with each
// other as lifecycle actions happen, and tells affected users about it.
package cascade

import (
	"context"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/websocket"
)

// GroupNotice is pushed to users when a group they knew about is gone
type GroupNotice struct {
	GroupID   uint   `json:"group_id"`
	GroupName string `json:"group_name"`
}

// EventNotice is pushed to group members when an event is gone
type EventNotice struct {
	EventID   uint   `json:"event_id"`
	EventName string `json:"event_name"`
	GroupID   uint   `json:"group_id"`
}

// MemberNotice is broadcast on a group channel when membership changes
type MemberNotice struct {
	GroupID  uint   `json:"group_id"`
	Username string `json:"username"`
}

// IssueInvite stores a pending invite for receiver and pushes it on the
// invites channel. A second pending invite for the same receiver, kind and
// target fails with AlreadyExists.
func IssueInvite(ctx context.Context, tx *actions.Tx, kind models.InviteKind, targetID uint, targetName, sender string, receiver *models.User) (*models.Invite, error) {
	pending, err := tx.ExistsInviteByReceiverAndKindAndTarget(ctx, receiver.ID, kind, targetID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, apperrors.AlreadyExists("%s already has a pending %s invite to %d", receiver.Username, kind, targetID)
	}

	invite := &models.Invite{
		Kind:           kind,
		TargetID:       targetID,
		TargetName:     targetName,
		SenderUsername: sender,
		ReceiverID:     receiver.ID,
	}
	if err := tx.CreateInvite(ctx, invite); err != nil {
		return nil, err
	}

	tx.Notify.SendToUser(receiver.Username, websocket.ChannelInvites, invite)
	return invite, nil
}
