package services

import (
	"context"
	"testing"

	"github.com/ievamoo/get2gether/actions"
	"github.com/ievamoo/get2gether/cascade"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"github.com/ievamoo/get2gether/testkit"
	"go.uber.org/zap"
)

type fakeTokens struct{}

func (fakeTokens) GenerateToken(username string) (string, error) {
	return "token-" + username, nil
}

func newTestServices(t *testing.T) (*Services, *repositories.GormStore, *testkit.Recorder) {
	t.Helper()

	store := testkit.NewStore(t)
	rec := &testkit.Recorder{}
	d := actions.NewDispatcher(zap.NewNop())
	d.SubscribeGroup(cascade.NewGroupHandler(zap.NewNop()))
	d.SubscribeEvent(cascade.NewEventHandler(zap.NewNop()))
	runner := actions.NewRunner(store, rec, d)
	return New(store, runner, fakeTokens{}, zap.NewNop()), store, rec
}

func inviteFor(t *testing.T, store repositories.Store, user *models.User, kind models.InviteKind, targetID uint) *models.Invite {
	t.Helper()
	invites, err := store.FindInvitesByReceiver(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindInvitesByReceiver error = %v", err)
	}
	for i := range invites {
		if invites[i].Kind == kind && invites[i].TargetID == targetID {
			return &invites[i]
		}
	}
	return nil
}

func isMember(t *testing.T, store repositories.Store, groupID, userID uint) bool {
	t.Helper()
	ok, err := store.IsGroupMember(context.Background(), groupID, userID)
	if err != nil {
		t.Fatalf("IsGroupMember error = %v", err)
	}
	return ok
}
