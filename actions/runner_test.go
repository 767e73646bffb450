package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/testkit"
	"go.uber.org/zap"
)

// traceHandler appends "<name>:<action>" to calls and fails with err when set
type traceHandler struct {
	name  string
	calls *[]string
	err   error
}

func (h traceHandler) record(a Action) error {
	*h.calls = append(*h.calls, h.name+":"+a.Name())
	return h.err
}

func (h traceHandler) OnGroupCreated(_ context.Context, _ *Tx, a GroupCreated) error {
	return h.record(a)
}

func (h traceHandler) OnGroupDeleted(_ context.Context, _ *Tx, a GroupDeleted) error {
	return h.record(a)
}

func (h traceHandler) OnGroupLeft(_ context.Context, _ *Tx, a GroupLeft) error {
	return h.record(a)
}

func (h traceHandler) OnEventCreated(_ context.Context, _ *Tx, a EventCreated) error {
	return h.record(a)
}

func (h traceHandler) OnEventDeleted(_ context.Context, _ *Tx, a EventDeleted) error {
	return h.record(a)
}

func (h traceHandler) OnAttendanceChanged(_ context.Context, _ *Tx, a AttendanceChanged) error {
	return h.record(a)
}

func TestPublishOrder(t *testing.T) {
	store := testkit.NewStore(t)
	var calls []string

	d := NewDispatcher(zap.NewNop())
	d.SubscribeGroup(traceHandler{name: "first", calls: &calls})
	d.SubscribeGroup(traceHandler{name: "second", calls: &calls})
	d.SubscribeEvent(traceHandler{name: "events", calls: &calls})

	runner := NewRunner(store, &testkit.Recorder{}, d)
	err := runner.Run(context.Background(), func(tx *Tx) error {
		if err := tx.Publish(context.Background(), GroupCreated{Group: &models.Group{}}); err != nil {
			return err
		}
		return tx.Publish(context.Background(), AttendanceChanged{User: &models.User{}})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"first:group.created", "second:group.created", "events:event.attendance_changed"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestHandlerErrorRollsBack(t *testing.T) {
	store := testkit.NewStore(t)
	rec := &testkit.Recorder{}
	boom := errors.New("boom")
	var calls []string

	d := NewDispatcher(zap.NewNop())
	d.SubscribeGroup(traceHandler{name: "failing", calls: &calls, err: boom})
	d.SubscribeGroup(traceHandler{name: "never", calls: &calls})

	runner := NewRunner(store, rec, d)
	err := runner.Run(context.Background(), func(tx *Tx) error {
		user := &models.User{Username: "ghost", Password: "secret123"}
		if err := tx.CreateUser(context.Background(), user); err != nil {
			return err
		}
		tx.Notify.SendToUser("ghost", "invites", "hello")
		return tx.Publish(context.Background(), GroupDeleted{Group: &models.Group{}})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}

	if len(calls) != 1 || calls[0] != "failing:group.deleted" {
		t.Fatalf("calls = %v, want only the failing handler", calls)
	}
	if _, err := store.FindUserByUsername(context.Background(), "ghost"); !apperrors.IsNotFound(err) {
		t.Fatalf("user survived rollback, lookup error = %v", err)
	}
	if got := rec.Sent(); len(got) != 0 {
		t.Fatalf("notifications after rollback = %v, want none", got)
	}
}

func TestNotificationsWaitForCommit(t *testing.T) {
	store := testkit.NewStore(t)
	rec := &testkit.Recorder{}
	runner := NewRunner(store, rec, NewDispatcher(zap.NewNop()))

	err := runner.Run(context.Background(), func(tx *Tx) error {
		tx.Notify.SendToUser("alice", "invites", 1)
		tx.Notify.BroadcastToGroup(7, "user-left", 2)
		if n := len(rec.Sent()) + len(rec.Broadcasts()); n != 0 {
			t.Errorf("%d notifications delivered before commit", n)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := rec.SentTo("alice", "invites"); len(got) != 1 {
		t.Fatalf("sent to alice = %v, want 1", got)
	}
	if got := rec.Broadcasts(); len(got) != 1 || got[0].GroupID != 7 {
		t.Fatalf("broadcasts = %v, want one to group 7", got)
	}
}

func TestCommitKeepsWork(t *testing.T) {
	store := testkit.NewStore(t)
	rec := &testkit.Recorder{}
	runner := NewRunner(store, rec, NewDispatcher(zap.NewNop()))

	err := runner.Run(context.Background(), func(tx *Tx) error {
		user := &models.User{Username: "kept", Password: "secret123"}
		if err := tx.CreateUser(context.Background(), user); err != nil {
			return err
		}
		tx.Notify.SendToUser("kept", "invites", nil)
		return Commit(apperrors.AlreadyExists("already there"))
	})
	if !apperrors.IsAlreadyExists(err) {
		t.Fatalf("Run() error = %v, want AlreadyExists", err)
	}

	if _, err := store.FindUserByUsername(context.Background(), "kept"); err != nil {
		t.Fatalf("committed user missing: %v", err)
	}
	if got := rec.SentTo("kept", "invites"); len(got) != 1 {
		t.Fatalf("sent = %v, want 1 after commit", got)
	}
}

func TestCommitNil(t *testing.T) {
	t.Parallel()
	if err := Commit(nil); err != nil {
		t.Fatalf("Commit(nil) = %v, want nil", err)
	}
}
