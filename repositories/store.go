package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"gorm.io/gorm"
)

// Store is the persistence contract the domain depends on. Lookups return
// apperrors NotFound when a record is absent; any other error is an I/O
// failure and must abort the enclosing transaction.
type Store interface {
	UserStore
	GroupStore
	EventStore
	InviteStore
	MessageStore

	// Transaction runs fn with a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(Store) error) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsUserByUsername(ctx context.Context, username string) (bool, error)
	ReplaceAvailableDays(ctx context.Context, userID uint, dates []string) error
	RemoveAvailableDay(ctx context.Context, userID uint, date string) error
}

type GroupStore interface {
	CreateGroup(ctx context.Context, group *models.Group) error
	FindGroupByID(ctx context.Context, id uint) (*models.Group, error)
	FindGroupsByMember(ctx context.Context, userID uint) ([]models.Group, error)
	ExistsGroupByName(ctx context.Context, name string) (bool, error)
	IsGroupMember(ctx context.Context, groupID, userID uint) (bool, error)
	AddGroupMember(ctx context.Context, groupID, userID uint) error
	RemoveGroupMember(ctx context.Context, groupID, userID uint) error
	DeleteGroup(ctx context.Context, id uint) error
}

type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	FindEventByID(ctx context.Context, id uint) (*models.Event, error)
	FindEventsByGroup(ctx context.Context, groupID uint) ([]models.Event, error)
	AddGoingMember(ctx context.Context, eventID, userID uint) error
	RemoveGoingMember(ctx context.Context, eventID, userID uint) error
	DeleteEvent(ctx context.Context, id uint) error
}

type InviteStore interface {
	CreateInvite(ctx context.Context, invite *models.Invite) error
	FindInviteByID(ctx context.Context, id uint) (*models.Invite, error)
	FindInvitesByReceiver(ctx context.Context, receiverID uint) ([]models.Invite, error)
	FindInvitesByKindAndTarget(ctx context.Context, kind models.InviteKind, targetID uint) ([]models.Invite, error)
	ExistsInviteByReceiverAndKindAndTarget(ctx context.Context, receiverID uint, kind models.InviteKind, targetID uint) (bool, error)
	DeleteInvite(ctx context.Context, id uint) error
	DeleteInvitesByKindAndTargets(ctx context.Context, kind models.InviteKind, targetIDs []uint) (int64, error)
	DeleteInvitesByReceiverAndKindAndTargets(ctx context.Context, receiverID uint, kind models.InviteKind, targetIDs []uint) (int64, error)
}

type MessageStore interface {
	CreateMessage(ctx context.Context, message *models.Message) error
	FindMessagesByGroup(ctx context.Context, groupID uint, limit int) ([]models.Message, error)
}

// GormStore implements Store on top of gorm
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps an open gorm connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// translate classifies gorm errors into the application taxonomy
func translate(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NotFound("%s not found", what)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.AlreadyExists("%s already exists", what)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func exists(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
