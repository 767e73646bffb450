package services

import (
	"context"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"go.uber.org/zap"
)

type EventService struct {
	store  repositories.Store
	runner *actions.Runner
	log    *zap.Logger
}

func NewEventService(store repositories.Store, runner *actions.Runner, log *zap.Logger) *EventService {
	return &EventService{store: store, runner: runner, log: log}
}

// ListByGroup returns a group's events to one of its members
func (s *EventService) ListByGroup(ctx context.Context, actor string, groupID uint) ([]models.Event, error) {
	group, err := s.store.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(actor) {
		return nil, apperrors.Forbidden("you are not a member of group %d", groupID)
	}
	return s.store.FindEventsByGroup(ctx, groupID)
}

// Create schedules an event hosted by actor. The host is going from the start
// and every other member is invited.
func (s *EventService) Create(ctx context.Context, actor string, groupID uint, name, date string) (*models.Event, error) {
	date, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	var event *models.Event
	err = s.runner.Run(ctx, func(tx *actions.Tx) error {
		group, err := tx.FindGroupByID(ctx, groupID)
		if err != nil {
			return err
		}
		if !group.HasMember(actor) {
			return apperrors.Forbidden("you are not a member of group %d", groupID)
		}
		host, err := tx.FindUserByUsername(ctx, actor)
		if err != nil {
			return err
		}

		event = &models.Event{Name: name, Date: date, HostUsername: actor, GroupID: groupID}
		if err := tx.CreateEvent(ctx, event); err != nil {
			return err
		}
		if err := tx.AddGoingMember(ctx, event.ID, host.ID); err != nil {
			return err
		}
		event.GoingMembers = []models.User{*host}

		if err := tx.Publish(ctx, actions.EventCreated{Event: event, Members: group.Members}); err != nil {
			return err
		}
		return tx.Publish(ctx, actions.AttendanceChanged{User: host, EventID: event.ID, Date: date, IsGoing: true})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("event created", zap.Uint("event_id", event.ID), zap.Uint("group_id", groupID))
	return event, nil
}

// Delete removes an event. Host only.
func (s *EventService) Delete(ctx context.Context, actor string, id uint) error {
	return s.runner.Run(ctx, func(tx *actions.Tx) error {
		event, err := tx.FindEventByID(ctx, id)
		if err != nil {
			return err
		}
		if event.HostUsername != actor {
			return apperrors.Forbidden("only the host can delete event %d", id)
		}
		if err := tx.DeleteEvent(ctx, id); err != nil {
			return err
		}

		var members []models.User
		if event.Group != nil {
			members = event.Group.Members
		}
		return tx.Publish(ctx, actions.EventDeleted{Event: event, Members: members})
	})
}

// SetAttendance marks actor as going or not going
func (s *EventService) SetAttendance(ctx context.Context, actor string, id uint, going bool) (*models.Event, error) {
	err := s.runner.Run(ctx, func(tx *actions.Tx) error {
		event, err := tx.FindEventByID(ctx, id)
		if err != nil {
			return err
		}
		if event.Group == nil || !event.Group.HasMember(actor) {
			return apperrors.Forbidden("you are not a member of the group of event %d", id)
		}
		user, err := tx.FindUserByUsername(ctx, actor)
		if err != nil {
			return err
		}

		if going {
			err = tx.AddGoingMember(ctx, id, user.ID)
		} else {
			err = tx.RemoveGoingMember(ctx, id, user.ID)
		}
		if err != nil {
			return err
		}
		return tx.Publish(ctx, actions.AttendanceChanged{User: user, EventID: id, Date: event.Date, IsGoing: going})
	})
	if err != nil {
		return nil, err
	}
	return s.store.FindEventByID(ctx, id)
}
