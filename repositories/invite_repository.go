package repositories

import (
	"context"

	"github.com/ievamoo/get2gether/models"
	"gorm.io/gorm/clause"
)

// CreateInvite inserts a pending invite. The (receiver, kind, target) unique
// index turns a lost check-then-insert race into AlreadyExists.
func (s *GormStore) CreateInvite(ctx context.Context, invite *models.Invite) error {
	if err := s.conn(ctx).Omit(clause.Associations).Create(invite).Error; err != nil {
		return translate(err, "%s invite to %d for user %d", invite.Kind, invite.TargetID, invite.ReceiverID)
	}
	return nil
}

func (s *GormStore) FindInviteByID(ctx context.Context, id uint) (*models.Invite, error) {
	var invite models.Invite
	if err := s.conn(ctx).Preload("Receiver").First(&invite, id).Error; err != nil {
		return nil, translate(err, "invite %d", id)
	}
	return &invite, nil
}

func (s *GormStore) FindInvitesByReceiver(ctx context.Context, receiverID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := s.conn(ctx).
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&invites).Error
	if err != nil {
		return nil, translate(err, "invites of user %d", receiverID)
	}
	return invites, nil
}

func (s *GormStore) FindInvitesByKindAndTarget(ctx context.Context, kind models.InviteKind, targetID uint) ([]models.Invite, error) {
	var invites []models.Invite
	err := s.conn(ctx).
		Where("kind = ? AND target_id = ?", kind, targetID).
		Preload("Receiver").
		Find(&invites).Error
	if err != nil {
		return nil, translate(err, "%s invites to %d", kind, targetID)
	}
	return invites, nil
}

func (s *GormStore) ExistsInviteByReceiverAndKindAndTarget(ctx context.Context, receiverID uint, kind models.InviteKind, targetID uint) (bool, error) {
	ok, err := exists(s.conn(ctx).Model(&models.Invite{}).
		Where("receiver_id = ? AND kind = ? AND target_id = ?", receiverID, kind, targetID))
	if err != nil {
		return false, translate(err, "%s invite to %d for user %d", kind, targetID, receiverID)
	}
	return ok, nil
}

func (s *GormStore) DeleteInvite(ctx context.Context, id uint) error {
	if err := s.conn(ctx).Delete(&models.Invite{}, id).Error; err != nil {
		return translate(err, "delete invite %d", id)
	}
	return nil
}

func (s *GormStore) DeleteInvitesByKindAndTargets(ctx context.Context, kind models.InviteKind, targetIDs []uint) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	res := s.conn(ctx).
		Where("kind = ? AND target_id IN ?", kind, targetIDs).
		Delete(&models.Invite{})
	if res.Error != nil {
		return 0, translate(res.Error, "delete %s invites to %v", kind, targetIDs)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteInvitesByReceiverAndKindAndTargets(ctx context.Context, receiverID uint, kind models.InviteKind, targetIDs []uint) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	res := s.conn(ctx).
		Where("receiver_id = ? AND kind = ? AND target_id IN ?", receiverID, kind, targetIDs).
		Delete(&models.Invite{})
	if res.Error != nil {
		return 0, translate(res.Error, "delete %s invites of user %d", kind, receiverID)
	}
	return res.RowsAffected, nil
}
