package session

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestLoginAndLookup(t *testing.T) {
	gokeyring.MockInit()

	s := NewStore()
	if err := s.Login("user-123", "token-abc", "me@example.com"); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if got := s.UserID(); got != "user-123" {
		t.Errorf("UserID() = %q, want %q", got, "user-123")
	}
	if got := s.AccessToken(); got != "token-abc" {
		t.Errorf("AccessToken() = %q, want %q", got, "token-abc")
	}
	if got := s.Email(); got != "me@example.com" {
		t.Errorf("Email() = %q, want %q", got, "me@example.com")
	}
	if !s.IsAuthenticated() {
		t.Error("IsAuthenticated() = false after Login()")
	}
}

func TestLoginValidation(t *testing.T) {
	gokeyring.MockInit()

	s := NewStore()
	if err := s.Login("", "token", ""); err == nil {
		t.Error("Login with empty user id should fail")
	}
	if err := s.Login("user", "", ""); err == nil {
		t.Error("Login with empty token should fail")
	}
}

func TestLookupWithoutSession(t *testing.T) {
	gokeyring.MockInit()

	s := NewStore()
	_ = s.Logout()

	// Missing session reads back as empty values, not errors.
	if got := s.UserID(); got != "" {
		t.Errorf("UserID() = %q, want empty", got)
	}
	if got := s.AccessToken(); got != "" {
		t.Errorf("AccessToken() = %q, want empty", got)
	}
	if s.IsAuthenticated() {
		t.Error("IsAuthenticated() = true with no stored session")
	}
}

func TestLogout(t *testing.T) {
	gokeyring.MockInit()

	s := NewStore()
	if err := s.Login("user-123", "token-abc", ""); err != nil {
		t.Fatalf("Login() failed: %v", err)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}

	if s.IsAuthenticated() {
		t.Error("still authenticated after Logout()")
	}

	if err := s.Logout(); err != ErrNotFound {
		t.Errorf("second Logout() error = %v, want ErrNotFound", err)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	if !IsAvailable() {
		t.Error("IsAvailable() = false with mock keyring")
	}
}
