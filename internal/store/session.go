// internal/store/session.go
package store

import (
	"context"

	"github.com/your-org/rupedia-backend/internal/infrastructure/snapshot"
)

// CurrentUser returns the logged-in session user, or nil
func (s *Store) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Login records the session user. There is no password check; any name
// becomes an admin session. Subsequent mutations are attributed to it.
func (s *Store) Login(username string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{Username: username, Role: "admin"}
	s.user = &u

	if err := s.persist(snapshot.KeyUser, u); err != nil {
		return User{}, err
	}

	s.log.WithField("username", username).Info("User logged in")
	return u, nil
}

// Logout clears the session user and its snapshot
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.snap.Delete(context.Background(), snapshot.KeyUser)
}
