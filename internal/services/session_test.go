package services

import (
	"errors"
	"testing"
	"time"
)

func newTestSessions(t *testing.T) *SessionService {
	t.Helper()
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "sekret")
	t.Setenv("ADMIN_JWT_SECRET", "test-signing-secret")

	sessions, err := NewSessionService()
	if err != nil {
		t.Fatalf("NewSessionService: %v", err)
	}
	return sessions
}

func TestSessionService_RequiresConfig(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("ADMIN_JWT_SECRET", "")

	if _, err := NewSessionService(); err == nil {
		t.Error("expected error with missing admin credentials")
	}
}

func TestLogin_ValidCredentials(t *testing.T) {
	sessions := newTestSessions(t)

	token, err := sessions.Login("admin", "sekret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sessions.Validate(token); err != nil {
		t.Errorf("fresh token failed validation: %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	sessions := newTestSessions(t)

	for _, c := range [][2]string{
		{"admin", "wrong"},
		{"wrong", "sekret"},
		{"", ""},
	} {
		if _, err := sessions.Login(c[0], c[1]); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("Login(%q, %q) err = %v, want ErrBadCredentials", c[0], c[1], err)
		}
	}
}

func TestValidate_RejectsGarbageAndExpired(t *testing.T) {
	sessions := newTestSessions(t)

	if err := sessions.Validate("not-a-token"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("garbage token err = %v, want ErrInvalidSession", err)
	}

	// Token signed with a different secret
	other := newTestSessions(t)
	other.secret = []byte("different-secret")
	token, err := other.Login("admin", "sekret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sessions.Validate(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("foreign-signed token err = %v, want ErrInvalidSession", err)
	}

	// Expired token
	sessions.ttl = -time.Minute
	expired, err := sessions.Login("admin", "sekret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := sessions.Validate(expired); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("expired token err = %v, want ErrInvalidSession", err)
	}
}
