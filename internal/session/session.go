// Package session holds the current-user reference for a single
// application run. There is no authentication model: login adopts the
// demo account and signup fabricates a local record.
package session

import (
	"strings"

	"github.com/google/uuid"

	"techmarket/internal/catalog"
)

// Session is the explicitly owned current-user context passed to
// screens. Screens read it to gate themselves; only explicit login,
// signup and logout actions write it.
type Session struct {
	users   []catalog.User
	current *catalog.User
}

// New returns a logged-out session over the given user directory.
func New(users []catalog.User) *Session {
	return &Session{users: users}
}

// Current returns the signed-in user, or nil.
func (s *Session) Current() *catalog.User { return s.current }

// LoggedIn reports whether a user is signed in.
func (s *Session) LoggedIn() bool { return s.current != nil }

// Login signs in as the demo account (the first seeded user). Any
// credentials are accepted; there is no password check to perform
// against a mock directory.
func (s *Session) Login() *catalog.User {
	if len(s.users) == 0 {
		return nil
	}
	s.current = &s.users[0]
	return s.current
}

// Signup constructs a new unverified user and signs it in. The record
// exists only for this session; nothing persists it.
func (s *Session) Signup(name, email, phone string) *catalog.User {
	u := catalog.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	s.users = append(s.users, u)
	s.current = &s.users[len(s.users)-1]
	return s.current
}

// Logout clears the session reference. The user record itself survives.
func (s *Session) Logout() {
	s.current = nil
}

// UserByID looks up a user in the directory, including signups.
func (s *Session) UserByID(id string) *catalog.User {
	return catalog.UserByID(s.users, id)
}
