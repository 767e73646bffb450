package services

import (
	"context"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/cascade"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"github.com/ievamoo/get2gether/websocket"
	"go.uber.org/zap"
)

// InviteService is the only place invites are issued one by one or answered.
// A stored invite is always pending: answering deletes it whichever way the
// receiver decides.
type InviteService struct {
	store  repositories.Store
	runner *actions.Runner
	log    *zap.Logger
}

var _ websocket.InviteResponder = (*InviteService)(nil)

func NewInviteService(store repositories.Store, runner *actions.Runner, log *zap.Logger) *InviteService {
	return &InviteService{store: store, runner: runner, log: log}
}

// Received lists the pending invites addressed to actor
func (s *InviteService) Received(ctx context.Context, actor string) ([]models.Invite, error) {
	user, err := s.store.FindUserByUsername(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.FindInvitesByReceiver(ctx, user.ID)
}

// Send invites receiverUsername to a group (admin only) or to an event of a
// group both users belong to
func (s *InviteService) Send(ctx context.Context, actor string, kind models.InviteKind, targetID uint, receiverUsername string) (*models.Invite, error) {
	if !kind.Valid() {
		return nil, apperrors.Invalid("unknown invite kind %q", kind)
	}
	if receiverUsername == actor {
		return nil, apperrors.Invalid("you cannot invite yourself")
	}

	var invite *models.Invite
	err := s.runner.Run(ctx, func(tx *actions.Tx) error {
		receiver, err := tx.FindUserByUsername(ctx, receiverUsername)
		if err != nil {
			return err
		}

		switch kind {
		case models.InviteKindGroup:
			group, err := tx.FindGroupByID(ctx, targetID)
			if err != nil {
				return err
			}
			if group.Admin.Username != actor {
				return apperrors.Forbidden("only the admin can invite to group %d", targetID)
			}
			if group.HasMember(receiverUsername) {
				return apperrors.AlreadyExists("%s is already a member of group %d", receiverUsername, targetID)
			}
			invite, err = cascade.IssueInvite(ctx, tx, kind, group.ID, group.Name, actor, receiver)
			return err
		default:
			event, err := tx.FindEventByID(ctx, targetID)
			if err != nil {
				return err
			}
			if event.Group == nil || !event.Group.HasMember(actor) {
				return apperrors.Forbidden("you are not a member of the group of event %d", targetID)
			}
			if !event.Group.HasMember(receiverUsername) {
				return apperrors.Forbidden("%s is not a member of the group of event %d", receiverUsername, targetID)
			}
			if event.IsGoing(receiverUsername) {
				return apperrors.AlreadyExists("%s is already going to event %d", receiverUsername, targetID)
			}
			invite, err = cascade.IssueInvite(ctx, tx, kind, event.ID, event.Name, actor, receiver)
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return invite, nil
}

// Respond answers an invite addressed to actor. The invite is deleted before
// any side effect, so an accept that finds actor already in the group still
// removes the stale invite and then reports AlreadyExists.
func (s *InviteService) Respond(ctx context.Context, actor string, inviteID uint, accepted bool) error {
	err := s.runner.Run(ctx, func(tx *actions.Tx) error {
		invite, err := tx.FindInviteByID(ctx, inviteID)
		if err != nil {
			return err
		}
		if invite.Receiver.Username != actor {
			return apperrors.Forbidden("invite %d is not addressed to you", inviteID)
		}
		if err := tx.DeleteInvite(ctx, invite.ID); err != nil {
			return err
		}

		switch invite.Kind {
		case models.InviteKindGroup:
			return s.answerGroup(ctx, tx, invite, accepted)
		case models.InviteKindEvent:
			return s.answerEvent(ctx, tx, invite, accepted)
		default:
			return apperrors.Invalid("invite %d has unknown kind %q", invite.ID, invite.Kind)
		}
	})
	if err != nil {
		return err
	}

	s.log.Info("invite answered",
		zap.Uint("invite_id", inviteID),
		zap.String("username", actor),
		zap.Bool("accepted", accepted))
	return nil
}

func (s *InviteService) answerGroup(ctx context.Context, tx *actions.Tx, invite *models.Invite, accepted bool) error {
	if !accepted {
		return nil
	}

	member, err := tx.IsGroupMember(ctx, invite.TargetID, invite.ReceiverID)
	if err != nil {
		return err
	}
	if member {
		return actions.Commit(apperrors.AlreadyExists("you are already a member of group %d", invite.TargetID))
	}
	if err := tx.AddGroupMember(ctx, invite.TargetID, invite.ReceiverID); err != nil {
		return err
	}

	tx.Notify.BroadcastToGroup(invite.TargetID, websocket.TypeUserJoined, cascade.MemberNotice{
		GroupID:  invite.TargetID,
		Username: invite.Receiver.Username,
	})
	return nil
}

func (s *InviteService) answerEvent(ctx context.Context, tx *actions.Tx, invite *models.Invite, accepted bool) error {
	event, err := tx.FindEventByID(ctx, invite.TargetID)
	if err != nil {
		return err
	}
	if !accepted {
		return tx.RemoveGoingMember(ctx, event.ID, invite.ReceiverID)
	}

	if err := tx.AddGoingMember(ctx, event.ID, invite.ReceiverID); err != nil {
		return err
	}
	return tx.Publish(ctx, actions.AttendanceChanged{
		User:    &invite.Receiver,
		EventID: event.ID,
		Date:    event.Date,
		IsGoing: true,
	})
}
