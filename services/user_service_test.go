package services

import (
	"context"
	"testing"

	"github.com/ievamoo/get2gether/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()

	user, token, err := svc.Users.Register(ctx, "alice", "", "password1")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.DisplayName != "alice" || token != "token-alice" {
		t.Fatalf("Register() = %+v, %q", user, token)
	}

	if _, _, err := svc.Users.Register(ctx, "alice", "Alice", "password2"); !apperrors.IsAlreadyExists(err) {
		t.Fatalf("duplicate Register() error = %v, want AlreadyExists", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", username: "alice", password: "password1"},
		{name: "wrong password", username: "alice", password: "nope", wantErr: true},
		{name: "unknown user", username: "bob", password: "password1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, token, err := svc.Users.Login(ctx, tc.username, tc.password)
			if tc.wantErr {
				if !apperrors.IsUnauthorized(err) {
					t.Fatalf("Login() error = %v, want Unauthorized", err)
				}
				return
			}
			if err != nil || token != "token-alice" {
				t.Fatalf("Login() = %q, %v", token, err)
			}
		})
	}
}

func TestSetAvailableDays(t *testing.T) {
	svc, _, _ := newTestServices(t)
	ctx := context.Background()
	if _, _, err := svc.Users.Register(ctx, "alice", "Alice", "password1"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, err := svc.Users.SetAvailableDays(ctx, "alice", []string{"2025-06-01", " 2025-06-02", "2025-06-01"})
	if err != nil {
		t.Fatalf("SetAvailableDays() error = %v", err)
	}
	if got := user.Dates(); len(got) != 2 {
		t.Fatalf("days = %v, want 2 distinct", got)
	}

	if _, err := svc.Users.SetAvailableDays(ctx, "alice", []string{"06/01/2025"}); !apperrors.IsInvalid(err) {
		t.Fatalf("SetAvailableDays(bad) error = %v, want Invalid", err)
	}
	profile, err := svc.Users.Profile(ctx, "alice")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if got := profile.Dates(); len(got) != 2 {
		t.Fatalf("days after rejected update = %v, want unchanged", got)
	}
}
