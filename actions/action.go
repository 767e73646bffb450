// Package actions carries domain actions from mutation entry points to the
// handlers that cascade them. Everything runs synchronously inside the
// transaction of the request that raised the action.
package actions

import (
	"context"

	"github.com/ievamoo/get2gether/models"
)

// Action is a completed domain mutation. The set of actions is closed: each
// variant routes itself to one method of GroupHandler or EventHandler, so a
// new variant cannot be added without every handler implementing it.
type Action interface {
	Name() string
	dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error
}

// GroupHandler reacts to group lifecycle actions
type GroupHandler interface {
	OnGroupCreated(ctx context.Context, tx *Tx, a GroupCreated) error
	OnGroupDeleted(ctx context.Context, tx *Tx, a GroupDeleted) error
	OnGroupLeft(ctx context.Context, tx *Tx, a GroupLeft) error
}

// EventHandler reacts to event lifecycle actions
type EventHandler interface {
	OnEventCreated(ctx context.Context, tx *Tx, a EventCreated) error
	OnEventDeleted(ctx context.Context, tx *Tx, a EventDeleted) error
	OnAttendanceChanged(ctx context.Context, tx *Tx, a AttendanceChanged) error
}

// GroupCreated is raised after a group and its admin membership are stored
type GroupCreated struct {
	Group            *models.Group
	InvitedUsernames []string
}

// GroupDeleted is raised after the group row is gone. Group is a snapshot
// taken before deletion with Admin, Members and Events loaded.
type GroupDeleted struct {
	Group *models.Group
}

// GroupLeft is raised after User's membership was removed. Group is loaded
// with its Events.
type GroupLeft struct {
	Group *models.Group
	User  *models.User
}

// EventCreated is raised after the event is stored. Members is the owning
// group's member list at creation time.
type EventCreated struct {
	Event   *models.Event
	Members []models.User
}

// EventDeleted is raised after the event row is gone. Members is the owning
// group's member list at deletion time.
type EventDeleted struct {
	Event   *models.Event
	Members []models.User
}

// AttendanceChanged is raised when User starts or stops going to an event
// on Date
type AttendanceChanged struct {
	User    *models.User
	EventID uint
	Date    string
	IsGoing bool
}

func (GroupCreated) Name() string      { return "group.created" }
func (GroupDeleted) Name() string      { return "group.deleted" }
func (GroupLeft) Name() string         { return "group.left" }
func (EventCreated) Name() string      { return "event.created" }
func (EventDeleted) Name() string      { return "event.deleted" }
func (AttendanceChanged) Name() string { return "event.attendance_changed" }

func (a GroupCreated) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.groupHandlers {
		if err := h.OnGroupCreated(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}

func (a GroupDeleted) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.groupHandlers {
		if err := h.OnGroupDeleted(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}

func (a GroupLeft) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.groupHandlers {
		if err := h.OnGroupLeft(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}

func (a EventCreated) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.eventHandlers {
		if err := h.OnEventCreated(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}

func (a EventDeleted) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.eventHandlers {
		if err := h.OnEventDeleted(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}

func (a AttendanceChanged) dispatch(ctx context.Context, tx *Tx, d *Dispatcher) error {
	for _, h := range d.eventHandlers {
		if err := h.OnAttendanceChanged(ctx, tx, a); err != nil {
			return err
		}
	}
	return nil
}
