package services

import (
	"context"
	"testing"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/testkit"
	"github.com/ievamoo/get2gether/websocket"
)

func TestCreateEvent(t *testing.T) {
	svc, store, rec := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host", "2025-06-01", "2025-06-02")
	u1 := testkit.CreateUser(t, store, "u1")
	u2 := testkit.CreateUser(t, store, "u2")
	testkit.CreateUser(t, store, "outsider")
	group := testkit.CreateGroup(t, store, "climbers", host, u1, u2)

	if _, err := svc.Events.Create(ctx, "outsider", group.ID, "boulder", "2025-06-01"); !apperrors.IsForbidden(err) {
		t.Fatalf("Create() by outsider error = %v, want Forbidden", err)
	}
	if _, err := svc.Events.Create(ctx, "host", group.ID, "boulder", "June 1st"); !apperrors.IsInvalid(err) {
		t.Fatalf("Create() with bad date error = %v, want Invalid", err)
	}

	event, err := svc.Events.Create(ctx, "host", group.ID, "boulder", "2025-06-01")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got := testkit.CountInvites(t, store, models.InviteKindEvent, event.ID); got != 2 {
		t.Fatalf("event invites = %d, want 2", got)
	}
	for _, u := range []*models.User{u1, u2} {
		if inviteFor(t, store, u, models.InviteKindEvent, event.ID) == nil {
			t.Errorf("%s has no invite", u.Username)
		}
	}
	if inviteFor(t, store, host, models.InviteKindEvent, event.ID) != nil {
		t.Fatal("host was invited to their own event")
	}
	if got := len(rec.Sent()); got != 2 {
		t.Fatalf("notifications = %d, want 2", got)
	}

	loaded, err := store.FindEventByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("FindEventByID error = %v", err)
	}
	if !loaded.IsGoing("host") {
		t.Fatal("host is not going to their own event")
	}
	profile, err := svc.Users.Profile(ctx, "host")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if got := profile.Dates(); len(got) != 1 || got[0] != "2025-06-02" {
		t.Fatalf("host days = %v, want [2025-06-02]", got)
	}
}

func TestDeleteEvent(t *testing.T) {
	svc, store, rec := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host")
	u1 := testkit.CreateUser(t, store, "u1")
	group := testkit.CreateGroup(t, store, "runners", host, u1)

	event, err := svc.Events.Create(ctx, "host", group.ID, "10k", "2025-06-01")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	rec.Reset()

	if err := svc.Events.Delete(ctx, "u1", event.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("Delete() by non-host error = %v, want Forbidden", err)
	}
	if err := svc.Events.Delete(ctx, "host", event.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if got := testkit.CountInvites(t, store, models.InviteKindEvent, event.ID); got != 0 {
		t.Fatalf("event invites = %d, want 0", got)
	}
	for _, username := range []string{"host", "u1"} {
		if got := rec.SentTo(username, websocket.ChannelEventDeleted); len(got) != 1 {
			t.Errorf("%s event-deleted notices = %d, want 1", username, len(got))
		}
	}
}

func TestSetAttendanceKeepsDayConsumed(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host")
	u1 := testkit.CreateUser(t, store, "u1", "2025-06-01")
	testkit.CreateUser(t, store, "outsider")
	group := testkit.CreateGroup(t, store, "friends", host, u1)
	event := testkit.CreateEvent(t, store, group, "dinner", "2025-06-01", host)

	if _, err := svc.Events.SetAttendance(ctx, "outsider", event.ID, true); !apperrors.IsForbidden(err) {
		t.Fatalf("SetAttendance() by outsider error = %v, want Forbidden", err)
	}

	loaded, err := svc.Events.SetAttendance(ctx, "u1", event.ID, true)
	if err != nil {
		t.Fatalf("SetAttendance(true) error = %v", err)
	}
	if !loaded.IsGoing("u1") {
		t.Fatal("u1 is not going")
	}

	loaded, err = svc.Events.SetAttendance(ctx, "u1", event.ID, false)
	if err != nil {
		t.Fatalf("SetAttendance(false) error = %v", err)
	}
	if loaded.IsGoing("u1") {
		t.Fatal("u1 is still going")
	}

	profile, err := svc.Users.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if got := profile.Dates(); len(got) != 0 {
		t.Fatalf("u1 days = %v, want the consumed day to stay gone", got)
	}
}

func TestListEventsByGroup(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host")
	testkit.CreateUser(t, store, "outsider")
	group := testkit.CreateGroup(t, store, "cinema", host)
	testkit.CreateEvent(t, store, group, "late show", "2025-06-02", host)
	testkit.CreateEvent(t, store, group, "matinee", "2025-06-01", host)

	events, err := svc.Events.ListByGroup(ctx, "host", group.ID)
	if err != nil {
		t.Fatalf("ListByGroup() error = %v", err)
	}
	if len(events) != 2 || events[0].Name != "matinee" {
		t.Fatalf("ListByGroup() = %+v, want two events by date", events)
	}
	if _, err := svc.Events.ListByGroup(ctx, "outsider", group.ID); !apperrors.IsForbidden(err) {
		t.Fatalf("ListByGroup() by outsider error = %v, want Forbidden", err)
	}
}
