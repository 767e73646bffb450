package services

import (
	"context"
	"testing"

	"github.com/ievamoo/get2gether/apperrors"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/testkit"
	"github.com/ievamoo/get2gether/websocket"
)

func TestRespondGroupInvite(t *testing.T) {
	tests := []struct {
		name       string
		accepted   bool
		wantMember bool
		wantJoined int
	}{
		{name: "accept", accepted: true, wantMember: true, wantJoined: 1},
		{name: "decline", accepted: false, wantMember: false, wantJoined: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, rec := newTestServices(t)
			ctx := context.Background()
			admin := testkit.CreateUser(t, store, "admin")
			u1 := testkit.CreateUser(t, store, "u1")
			group := testkit.CreateGroup(t, store, "club", admin)
			invite := testkit.CreateInvite(t, store, models.InviteKindGroup, group.ID, "admin", u1)

			if err := svc.Invites.Respond(ctx, "u1", invite.ID, tc.accepted); err != nil {
				t.Fatalf("Respond() error = %v", err)
			}

			if got := isMember(t, store, group.ID, u1.ID); got != tc.wantMember {
				t.Fatalf("member = %v, want %v", got, tc.wantMember)
			}
			if _, err := store.FindInviteByID(ctx, invite.ID); !apperrors.IsNotFound(err) {
				t.Fatalf("invite lookup error = %v, want NotFound", err)
			}
			joined := 0
			for _, b := range rec.Broadcasts() {
				if b.Type == websocket.TypeUserJoined && b.GroupID == group.ID {
					joined++
				}
			}
			if joined != tc.wantJoined {
				t.Fatalf("user-joined broadcasts = %d, want %d", joined, tc.wantJoined)
			}
		})
	}
}

func TestRespondOnlyByReceiver(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	admin := testkit.CreateUser(t, store, "admin")
	u1 := testkit.CreateUser(t, store, "u1")
	group := testkit.CreateGroup(t, store, "club", admin)
	invite := testkit.CreateInvite(t, store, models.InviteKindGroup, group.ID, "admin", u1)

	if err := svc.Invites.Respond(ctx, "admin", invite.ID, true); !apperrors.IsForbidden(err) {
		t.Fatalf("Respond() by sender error = %v, want Forbidden", err)
	}
	if _, err := store.FindInviteByID(ctx, invite.ID); err != nil {
		t.Fatalf("invite gone after rejected response: %v", err)
	}
	if err := svc.Invites.Respond(ctx, "u1", 999, true); !apperrors.IsNotFound(err) {
		t.Fatalf("Respond(missing) error = %v, want NotFound", err)
	}
}

func TestAcceptGroupInviteWhenAlreadyMember(t *testing.T) {
	svc, store, rec := newTestServices(t)
	ctx := context.Background()
	admin := testkit.CreateUser(t, store, "admin")
	u1 := testkit.CreateUser(t, store, "u1")
	group := testkit.CreateGroup(t, store, "club", admin, u1)
	invite := testkit.CreateInvite(t, store, models.InviteKindGroup, group.ID, "admin", u1)

	if err := svc.Invites.Respond(ctx, "u1", invite.ID, true); !apperrors.IsAlreadyExists(err) {
		t.Fatalf("Respond() error = %v, want AlreadyExists", err)
	}
	if _, err := store.FindInviteByID(ctx, invite.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("stale invite lookup error = %v, want NotFound", err)
	}
	if got := rec.Broadcasts(); len(got) != 0 {
		t.Fatalf("broadcasts = %+v, want none", got)
	}
}

func TestRespondEventInvite(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host")
	u1 := testkit.CreateUser(t, store, "u1", "2025-06-01", "2025-06-09")
	group := testkit.CreateGroup(t, store, "cooks", host, u1)
	event := testkit.CreateEvent(t, store, group, "bbq", "2025-06-01", host)

	accept := testkit.CreateInvite(t, store, models.InviteKindEvent, event.ID, "host", u1)
	if err := svc.Invites.Respond(ctx, "u1", accept.ID, true); err != nil {
		t.Fatalf("Respond(accept) error = %v", err)
	}
	loaded, err := store.FindEventByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("FindEventByID error = %v", err)
	}
	if !loaded.IsGoing("u1") {
		t.Fatal("u1 is not going after accepting")
	}
	profile, err := svc.Users.Profile(ctx, "u1")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if got := profile.Dates(); len(got) != 1 || got[0] != "2025-06-09" {
		t.Fatalf("u1 days = %v, want [2025-06-09]", got)
	}

	decline := testkit.CreateInvite(t, store, models.InviteKindEvent, event.ID, "host", u1)
	if err := svc.Invites.Respond(ctx, "u1", decline.ID, false); err != nil {
		t.Fatalf("Respond(decline) error = %v", err)
	}
	loaded, err = store.FindEventByID(ctx, event.ID)
	if err != nil {
		t.Fatalf("FindEventByID error = %v", err)
	}
	if loaded.IsGoing("u1") {
		t.Fatal("u1 still going after declining")
	}
}

// Declining when the receiver is not going is a plain deletion.
func TestDeclineEventInviteIsIdempotent(t *testing.T) {
	svc, store, _ := newTestServices(t)
	ctx := context.Background()
	host := testkit.CreateUser(t, store, "host")
	u1 := testkit.CreateUser(t, store, "u1")
	group := testkit.CreateGroup(t, store, "cooks", host, u1)
	event := testkit.CreateEvent(t, store, group, "bbq", "2025-06-01", host)
	invite := testkit.CreateInvite(t, store, models.InviteKindEvent, event.ID, "host", u1)

	if err := svc.Invites.Respond(ctx, "u1", invite.ID, false); err != nil {
		t.Fatalf("Respond(decline) error = %v", err)
	}
	if _, err := store.FindInviteByID(ctx, invite.ID); !apperrors.IsNotFound(err) {
		t.Fatalf("invite lookup error = %v, want NotFound", err)
	}
}

func TestSendInvite(t *testing.T) {
	svc, store, rec := newTestServices(t)
	ctx := context.Background()
	admin := testkit.CreateUser(t, store, "admin")
	u1 := testkit.CreateUser(t, store, "u1")
	u2 := testkit.CreateUser(t, store, "u2")
	testkit.CreateUser(t, store, "outsider")
	group := testkit.CreateGroup(t, store, "club", admin, u1)
	event := testkit.CreateEvent(t, store, group, "meetup", "2025-06-01", admin)
	if err := store.AddGoingMember(ctx, event.ID, admin.ID); err != nil {
		t.Fatalf("AddGoingMember error = %v", err)
	}

	tests := []struct {
		name     string
		actor    string
		kind     models.InviteKind
		target   uint
		receiver string
		check    func(error) bool
	}{
		{"group by member", "u1", models.InviteKindGroup, group.ID, "u2", apperrors.IsForbidden},
		{"group to member", "admin", models.InviteKindGroup, group.ID, "u1", apperrors.IsAlreadyExists},
		{"group to unknown", "admin", models.InviteKindGroup, group.ID, "nobody", apperrors.IsNotFound},
		{"missing group", "admin", models.InviteKindGroup, 999, "u2", apperrors.IsNotFound},
		{"bad kind", "admin", models.InviteKind("PARTY"), group.ID, "u2", apperrors.IsInvalid},
		{"self", "admin", models.InviteKindGroup, group.ID, "admin", apperrors.IsInvalid},
		{"group ok", "admin", models.InviteKindGroup, group.ID, "u2", func(err error) bool { return err == nil }},
		{"group duplicate", "admin", models.InviteKindGroup, group.ID, "u2", apperrors.IsAlreadyExists},
		{"event by outsider", "outsider", models.InviteKindEvent, event.ID, "u1", apperrors.IsForbidden},
		{"event to outsider", "u1", models.InviteKindEvent, event.ID, "outsider", apperrors.IsForbidden},
		{"event to going member", "u1", models.InviteKindEvent, event.ID, "admin", apperrors.IsAlreadyExists},
		{"event ok", "admin", models.InviteKindEvent, event.ID, "u1", func(err error) bool { return err == nil }},
	}

	for _, tc := range tests {
		if _, err := svc.Invites.Send(ctx, tc.actor, tc.kind, tc.target, tc.receiver); !tc.check(err) {
			t.Fatalf("%s: Send() error = %v", tc.name, err)
		}
	}

	if inviteFor(t, store, u2, models.InviteKindGroup, group.ID) == nil {
		t.Fatal("u2 has no group invite")
	}
	if inviteFor(t, store, u1, models.InviteKindEvent, event.ID) == nil {
		t.Fatal("u1 has no event invite")
	}
	if got := len(rec.Sent()); got != 2 {
		t.Fatalf("notifications = %d, want 2", got)
	}

	received, err := svc.Invites.Received(ctx, "u1")
	if err != nil {
		t.Fatalf("Received() error = %v", err)
	}
	if len(received) != 1 {
		t.Fatalf("Received() = %d invites, want 1", len(received))
	}
}
