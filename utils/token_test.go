package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("s3cret", time.Hour)
	token, err := issuer.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	got, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if got != "alice" {
		t.Fatalf("Verify() = %q, want %q", got, "alice")
	}
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer("s3cret", time.Hour)
	valid, err := issuer.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expired := NewTokenIssuer("s3cret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name     string
		verifier *TokenIssuer
		token    string
	}{
		{name: "garbage", verifier: issuer, token: "not-a-token"},
		{name: "wrong secret", verifier: NewTokenIssuer("other", time.Hour), token: valid},
		{name: "expired", verifier: issuer, token: old},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := tc.verifier.Verify(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}
