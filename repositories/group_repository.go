package repositories

import (
	"context"

	"github.com/ievamoo/get2gether/models"
	"gorm.io/gorm/clause"
)

// CreateGroup inserts the group and a membership row for every entry in
// group.Members.
func (s *GormStore) CreateGroup(ctx context.Context, group *models.Group) error {
	db := s.conn(ctx)
	if err := db.Omit(clause.Associations).Create(group).Error; err != nil {
		return translate(err, "group %q", group.Name)
	}
	for _, m := range group.Members {
		row := models.GroupMember{GroupID: group.ID, UserID: m.ID}
		if err := db.Create(&row).Error; err != nil {
			return translate(err, "membership of user %d in group %d", m.ID, group.ID)
		}
	}
	return nil
}

func (s *GormStore) FindGroupByID(ctx context.Context, id uint) (*models.Group, error) {
	var group models.Group
	err := s.conn(ctx).
		Preload("Admin").
		Preload("Members").
		Preload("Events").
		First(&group, id).Error
	if err != nil {
		return nil, translate(err, "group %d", id)
	}
	return &group, nil
}

func (s *GormStore) FindGroupsByMember(ctx context.Context, userID uint) ([]models.Group, error) {
	var groups []models.Group
	err := s.conn(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Preload("Members").
		Order("groups.name ASC").
		Find(&groups).Error
	if err != nil {
		return nil, translate(err, "groups of user %d", userID)
	}
	return groups, nil
}

func (s *GormStore) ExistsGroupByName(ctx context.Context, name string) (bool, error) {
	ok, err := exists(s.conn(ctx).Model(&models.Group{}).Where("name = ?", name))
	if err != nil {
		return false, translate(err, "group %q", name)
	}
	return ok, nil
}

func (s *GormStore) IsGroupMember(ctx context.Context, groupID, userID uint) (bool, error) {
	ok, err := exists(s.conn(ctx).Model(&models.GroupMember{}).
		Where("group_id = ? AND user_id = ?", groupID, userID))
	if err != nil {
		return false, translate(err, "membership of user %d in group %d", userID, groupID)
	}
	return ok, nil
}

// AddGroupMember fails with AlreadyExists when the membership row is present
func (s *GormStore) AddGroupMember(ctx context.Context, groupID, userID uint) error {
	row := models.GroupMember{GroupID: groupID, UserID: userID}
	if err := s.conn(ctx).Create(&row).Error; err != nil {
		return translate(err, "membership of user %d in group %d", userID, groupID)
	}
	return nil
}

func (s *GormStore) RemoveGroupMember(ctx context.Context, groupID, userID uint) error {
	err := s.conn(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&models.GroupMember{}).Error
	if err != nil {
		return translate(err, "membership of user %d in group %d", userID, groupID)
	}
	return nil
}

// DeleteGroup removes the group with its events, attendance, memberships and
// chat history. Invites are not touched here; they belong to the cascade.
func (s *GormStore) DeleteGroup(ctx context.Context, id uint) error {
	db := s.conn(ctx)
	eventIDs := db.Model(&models.Event{}).Select("id").Where("group_id = ?", id)

	steps := []struct {
		what  string
		query func() error
	}{
		{"attendance", func() error {
			return db.Where("event_id IN (?)", eventIDs).Delete(&models.EventGoingMember{}).Error
		}},
		{"events", func() error {
			return db.Where("group_id = ?", id).Delete(&models.Event{}).Error
		}},
		{"members", func() error {
			return db.Where("group_id = ?", id).Delete(&models.GroupMember{}).Error
		}},
		{"messages", func() error {
			return db.Where("group_id = ?", id).Delete(&models.Message{}).Error
		}},
		{"row", func() error {
			return db.Delete(&models.Group{}, id).Error
		}},
	}
	for _, step := range steps {
		if err := step.query(); err != nil {
			return translate(err, "delete group %d %s", id, step.what)
		}
	}
	return nil
}
