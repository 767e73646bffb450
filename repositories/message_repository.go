package repositories

import (
	"context"

	"github.com/ievamoo/get2gether/models"
)

func (s *GormStore) CreateMessage(ctx context.Context, message *models.Message) error {
	if err := s.conn(ctx).Create(message).Error; err != nil {
		return translate(err, "message in group %d", message.GroupID)
	}
	return nil
}

// FindMessagesByGroup returns the latest limit messages, oldest first
func (s *GormStore) FindMessagesByGroup(ctx context.Context, groupID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := s.conn(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, translate(err, "messages of group %d", groupID)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
