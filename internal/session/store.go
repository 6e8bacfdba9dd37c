// Package session holds the client's view of the authenticated user.
// The store is the single owner of that state; views receive it by
// injection rather than reaching for a global.
package session

import (
	"context"
	"sync"

	"github.com/Anisah23/grubgrab/internal/domain"
	"github.com/Anisah23/grubgrab/internal/logger"
)

// Store tracks the currently signed-in user, or nil when signed out.
// Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	user   *domain.User
	client domain.API
	log    *logger.Logger
}

// NewStore creates a signed-out store backed by the given API client.
func NewStore(client domain.API, log *logger.Logger) *Store {
	return &Store{client: client, log: log}
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SignedIn reports whether a user is signed in.
func (s *Store) SignedIn() bool { return s.Current() != nil }

// CheckSession asks the backend whether a session survives from a
// previous run. Any failure, auth or transport, means "signed out" and
// is logged rather than surfaced.
func (s *Store) CheckSession(ctx context.Context) {
	user, err := s.client.CheckSession(ctx)
	if err != nil || user == nil {
		if err != nil {
			s.log.Debug("session: check failed: %v", err)
		}
		s.set(nil)
		return
	}
	s.log.Info("session: restored for %s", user.Username)
	s.set(user)
}

// Login authenticates and stores the user. On failure the state is left
// untouched and the server's message (or a generic fallback) is
// returned.
func (s *Store) Login(ctx context.Context, username, password string) error {
	user, err := s.client.Login(ctx, username, password)
	if err != nil {
		s.log.Debug("session: login failed: %v", err)
		return err
	}
	s.set(user)
	return nil
}

// Signup creates an account and stores the resulting signed-in user.
func (s *Store) Signup(ctx context.Context, params domain.SignupParams) error {
	user, err := s.client.Signup(ctx, params)
	if err != nil {
		s.log.Debug("session: signup failed: %v", err)
		return err
	}
	s.set(user)
	return nil
}

// Logout ends the server session and clears the user unconditionally on
// success.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.client.Logout(ctx); err != nil {
		return err
	}
	s.set(nil)
	return nil
}

// SetUser overwrites the stored user with the caller's copy. Pure local
// state update, used after profile edits; no network call.
func (s *Store) SetUser(user *domain.User) {
	s.set(user)
}

func (s *Store) set(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}
