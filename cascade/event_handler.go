package cascade

import (
	"context"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/websocket"
	"go.uber.org/zap"
)

// EventHandler applies the consequences of event lifecycle actions
type EventHandler struct {
	log *zap.Logger
}

var _ actions.EventHandler = (*EventHandler)(nil)

func NewEventHandler(log *zap.Logger) *EventHandler {
	return &EventHandler{log: log}
}

// OnEventCreated invites every group member except the host
func (h *EventHandler) OnEventCreated(ctx context.Context, tx *actions.Tx, a actions.EventCreated) error {
	event := a.Event
	issued := 0
	for i := range a.Members {
		member := &a.Members[i]
		if member.Username == event.HostUsername {
			continue
		}
		if _, err := IssueInvite(ctx, tx, models.InviteKindEvent, event.ID, event.Name, event.HostUsername, member); err != nil {
			return err
		}
		issued++
	}

	h.log.Debug("event invites issued", zap.Uint("event_id", event.ID), zap.Int("count", issued))
	return nil
}

// OnEventDeleted removes the event's invites and tells every group member,
// the host included
func (h *EventHandler) OnEventDeleted(ctx context.Context, tx *actions.Tx, a actions.EventDeleted) error {
	event := a.Event
	removed, err := tx.DeleteInvitesByKindAndTargets(ctx, models.InviteKindEvent, []uint{event.ID})
	if err != nil {
		return err
	}

	notice := EventNotice{EventID: event.ID, EventName: event.Name, GroupID: event.GroupID}
	for _, member := range a.Members {
		tx.Notify.SendToUser(member.Username, websocket.ChannelEventDeleted, notice)
	}

	h.log.Info("event deleted",
		zap.Uint("event_id", event.ID),
		zap.Int64("invites_removed", removed),
		zap.Int("notified", len(a.Members)))
	return nil
}

// OnAttendanceChanged takes the date out of the user's available days when
// they start going. Not going anymore leaves the available days as they are.
func (h *EventHandler) OnAttendanceChanged(ctx context.Context, tx *actions.Tx, a actions.AttendanceChanged) error {
	if !a.IsGoing {
		return nil
	}
	if err := tx.RemoveAvailableDay(ctx, a.User.ID, a.Date); err != nil {
		return err
	}
	h.log.Debug("available day consumed", zap.String("username", a.User.Username), zap.String("date", a.Date))
	return nil
}
