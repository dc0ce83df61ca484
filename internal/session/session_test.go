package session

import (
	"testing"
)

func TestSession_startsSignedOut(t *testing.T) {
	s := New(200)

	if s.IsAuthenticated() {
		t.Error("expected signed-out session")
	}
	if s.Ledger().Points() != 200 {
		t.Errorf("expected 200 points, got %d", s.Ledger().Points())
	}
}

func TestSession_loginAndLogout(t *testing.T) {
	s := New(0)

	if err := s.Login("Jane", "jane@example.com"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated")
	}
	s.UpdateContact("123-456-7890", "1 Main St")
	if p := s.Profile(); p.Email != "jane@example.com" || p.Address != "1 Main St" {
		t.Errorf("unexpected profile %+v", p)
	}

	_, _ = s.Ledger().Add(12)
	s.Logout()
	if s.IsAuthenticated() {
		t.Error("expected signed out")
	}
	if s.Profile() != (Profile{}) {
		t.Errorf("expected cleared profile, got %+v", s.Profile())
	}
	if s.Ledger().Points() != 12 {
		t.Errorf("expected ledger to survive logout, got %d", s.Ledger().Points())
	}
}

func TestSession_loginRequiresEmail(t *testing.T) {
	s := New(0)

	if err := s.Login("Jane", "  "); err == nil {
		t.Error("expected error for blank email")
	}
	if s.IsAuthenticated() {
		t.Error("failed login must not authenticate")
	}
}
