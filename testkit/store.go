// Package testkit holds fixtures shared by package tests.
package testkit

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/ievamoo/get2gether/config"
	"github.com/ievamoo/get2gether/database"
	"github.com/ievamoo/get2gether/models"
	"github.com/ievamoo/get2gether/repositories"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB opens an isolated, migrated in-memory sqlite database
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))
	db, err := database.Connect(config.Database{Driver: "sqlite", SQLitePath: dsn})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewStore returns a GormStore over NewDB
func NewStore(t testing.TB) *repositories.GormStore {
	t.Helper()
	return repositories.NewGormStore(NewDB(t))
}

// CreateUser inserts a user with a fixed password
func CreateUser(t testing.TB, store repositories.Store, username string, days ...string) *models.User {
	t.Helper()

	user := &models.User{Username: username, DisplayName: username, Password: "secret123"}
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	if len(days) > 0 {
		if err := store.ReplaceAvailableDays(context.Background(), user.ID, days); err != nil {
			t.Fatalf("set days of %q: %v", username, err)
		}
	}
	return user
}

// CreateGroup inserts a group administered by admin with the given members.
// The admin is always a member.
func CreateGroup(t testing.TB, store repositories.Store, name string, admin *models.User, members ...*models.User) *models.Group {
	t.Helper()

	group := &models.Group{Name: name, AdminID: admin.ID, Members: []models.User{*admin}}
	for _, m := range members {
		group.Members = append(group.Members, *m)
	}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("create group %q: %v", name, err)
	}
	return group
}

// CreateEvent inserts an event hosted by host in group
func CreateEvent(t testing.TB, store repositories.Store, group *models.Group, name, date string, host *models.User) *models.Event {
	t.Helper()

	event := &models.Event{Name: name, Date: date, HostUsername: host.Username, GroupID: group.ID}
	if err := store.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("create event %q: %v", name, err)
	}
	return event
}

// CreateInvite inserts a pending invite addressed to receiver
func CreateInvite(t testing.TB, store repositories.Store, kind models.InviteKind, targetID uint, sender string, receiver *models.User) *models.Invite {
	t.Helper()

	invite := &models.Invite{Kind: kind, TargetID: targetID, SenderUsername: sender, ReceiverID: receiver.ID}
	if err := store.CreateInvite(context.Background(), invite); err != nil {
		t.Fatalf("create invite: %v", err)
	}
	return invite
}

// CountInvites counts invites of kind targeting targetID
func CountInvites(t testing.TB, store repositories.Store, kind models.InviteKind, targetID uint) int {
	t.Helper()

	invites, err := store.FindInvitesByKindAndTarget(context.Background(), kind, targetID)
	if err != nil {
		t.Fatalf("find invites: %v", err)
	}
	return len(invites)
}
