package services

import (
	"context"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"go.uber.org/zap"
)

// DefaultMessageLimit bounds chat history reads
const DefaultMessageLimit = 50

type GroupService struct {
	store  repositories.Store
	runner *actions.Runner
	log    *zap.Logger
}

func NewGroupService(store repositories.Store, runner *actions.Runner, log *zap.Logger) *GroupService {
	return &GroupService{store: store, runner: runner, log: log}
}

// List returns the groups actor belongs to
func (s *GroupService) List(ctx context.Context, actor string) ([]models.Group, error) {
	user, err := s.store.FindUserByUsername(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.store.FindGroupsByMember(ctx, user.ID)
}

// Get returns a group to one of its members
func (s *GroupService) Get(ctx context.Context, actor string, id uint) (*models.Group, error) {
	group, err := s.store.FindGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(actor) {
		return nil, apperrors.Forbidden("you are not a member of group %d", id)
	}
	return group, nil
}

// Create stores a group administered by actor and invites the listed users
func (s *GroupService) Create(ctx context.Context, actor, name string, invited []string) (*models.Group, error) {
	var group *models.Group
	err := s.runner.Run(ctx, func(tx *actions.Tx) error {
		admin, err := tx.FindUserByUsername(ctx, actor)
		if err != nil {
			return err
		}
		taken, err := tx.ExistsGroupByName(ctx, name)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.AlreadyExists("group name %q is already taken", name)
		}

		group = &models.Group{
			Name:    name,
			AdminID: admin.ID,
			Admin:   *admin,
			Members: []models.User{*admin},
		}
		if err := tx.CreateGroup(ctx, group); err != nil {
			return err
		}
		return tx.Publish(ctx, actions.GroupCreated{Group: group, InvitedUsernames: invited})
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("group created", zap.Uint("group_id", group.ID), zap.String("admin", actor))
	return group, nil
}

// Delete removes a group and everything hanging off it. Admin only.
func (s *GroupService) Delete(ctx context.Context, actor string, id uint) error {
	return s.runner.Run(ctx, func(tx *actions.Tx) error {
		group, err := tx.FindGroupByID(ctx, id)
		if err != nil {
			return err
		}
		if group.Admin.Username != actor {
			return apperrors.Forbidden("only the admin can delete group %d", id)
		}
		if err := tx.DeleteGroup(ctx, id); err != nil {
			return err
		}
		return tx.Publish(ctx, actions.GroupDeleted{Group: group})
	})
}

// Leave removes actor from a group. The admin cannot leave.
func (s *GroupService) Leave(ctx context.Context, actor string, id uint) error {
	return s.runner.Run(ctx, func(tx *actions.Tx) error {
		group, err := tx.FindGroupByID(ctx, id)
		if err != nil {
			return err
		}
		if !group.HasMember(actor) {
			return apperrors.Forbidden("you are not a member of group %d", id)
		}
		if group.Admin.Username == actor {
			return apperrors.Forbidden("the admin cannot leave group %d", id)
		}

		user, err := tx.FindUserByUsername(ctx, actor)
		if err != nil {
			return err
		}
		if err := tx.RemoveGroupMember(ctx, id, user.ID); err != nil {
			return err
		}
		return tx.Publish(ctx, actions.GroupLeft{Group: group, User: user})
	})
}

// Messages returns recent chat history to a member
func (s *GroupService) Messages(ctx context.Context, actor string, id uint, limit int) ([]models.Message, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > DefaultMessageLimit {
		limit = DefaultMessageLimit
	}
	return s.store.FindMessagesByGroup(ctx, id, limit)
}
