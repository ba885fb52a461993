package session

import (
	"testing"

	"techmarket/internal/catalog"
)

func TestLoginAdoptsDemoAccount(t *testing.T) {
	s := New(catalog.SeedUsers())
	if s.LoggedIn() {
		t.Fatalf("fresh session must be logged out")
	}
	u := s.Login()
	if u == nil || u.ID != "1" {
		t.Fatalf("expected demo user 1, got %+v", u)
	}
	if !s.LoggedIn() {
		t.Fatalf("login did not stick")
	}
}

func TestLoginEmptyDirectory(t *testing.T) {
	s := New(nil)
	if u := s.Login(); u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}
	if s.LoggedIn() {
		t.Fatalf("must remain logged out")
	}
}

func TestSignupCreatesAndSignsIn(t *testing.T) {
	s := New(catalog.SeedUsers())
	u := s.Signup("  Jamie Fox  ", "jamie@example.com", "+1 555-0100")
	if u.Name != "Jamie Fox" {
		t.Fatalf("name not trimmed: %q", u.Name)
	}
	if u.ID == "" {
		t.Fatalf("signup must assign an id")
	}
	if u.Verified {
		t.Fatalf("signups start unverified")
	}
	if s.Current() != u {
		t.Fatalf("signup must sign the user in")
	}
	if s.UserByID(u.ID) == nil {
		t.Fatalf("signup must join the directory")
	}
}

func TestLogoutKeepsRecord(t *testing.T) {
	s := New(catalog.SeedUsers())
	u := s.Signup("Jamie", "jamie@example.com", "")
	id := u.ID
	s.Logout()
	if s.LoggedIn() {
		t.Fatalf("logout did not clear the session")
	}
	if s.UserByID(id) == nil {
		t.Fatalf("logout must not destroy the user record")
	}
}
