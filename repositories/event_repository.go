package repositories

import (
	"context"

	"github.com/ievamoo/get2gether/models"
	"gorm.io/gorm/clause"
)

func (s *GormStore) CreateEvent(ctx context.Context, event *models.Event) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(event).Error; err != nil {
		return translate(err, "event %q", event.Name)
	}
	return nil
}

// FindEventByID loads the event with its going members and its group's members
func (s *GormStore) FindEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := s.conn(ctx).
		Preload("GoingMembers").
		Preload("Group.Members").
		First(&event, id).Error
	if err != nil {
		return nil, translate(err, "event %d", id)
	}
	return &event, nil
}

func (s *GormStore) FindEventsByGroup(ctx context.Context, groupID uint) ([]models.Event, error) {
	var events []models.Event
	err := s.conn(ctx).
		Where("group_id = ?", groupID).
		Preload("GoingMembers").
		Order("date ASC").
		Find(&events).Error
	if err != nil {
		return nil, translate(err, "events of group %d", groupID)
	}
	return events, nil
}

// AddGoingMember is idempotent
func (s *GormStore) AddGoingMember(ctx context.Context, eventID, userID uint) error {
	row := models.EventGoingMember{EventID: eventID, UserID: userID}
	err := s.conn(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return translate(err, "attendance of user %d at event %d", userID, eventID)
	}
	return nil
}

// RemoveGoingMember is a no-op when the user is not going
func (s *GormStore) RemoveGoingMember(ctx context.Context, eventID, userID uint) error {
	err := s.conn(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Delete(&models.EventGoingMember{}).Error
	if err != nil {
		return translate(err, "attendance of user %d at event %d", userID, eventID)
	}
	return nil
}

func (s *GormStore) DeleteEvent(ctx context.Context, id uint) error {
	db := s.conn(ctx)
	if err := db.Where("event_id = ?", id).Delete(&models.EventGoingMember{}).Error; err != nil {
		return translate(err, "delete attendance of event %d", id)
	}
	if err := db.Delete(&models.Event{}, id).Error; err != nil {
		return translate(err, "delete event %d", id)
	}
	return nil
}
