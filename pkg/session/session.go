// Package session tracks the client-side login state: the bearer token
// and user profile handed out at login, plus a local expiry check. The
// check only decodes the token, it never verifies the signature; the
// server remains the authority on token validity.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type State int

const (
	Anonymous State = iota
	Authenticated
	Expired
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	case Expired:
		return "expired"
	default:
		return "anonymous"
	}
}

// Profile is the user identity stored alongside the token.
type Profile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Store persists the token and profile between runs. The browser
// client keeps these in local storage; MemoryStore is the in-process
// equivalent.
type Store interface {
	Load() (token string, profile *Profile, ok bool)
	Save(token string, profile Profile)
	Clear()
}

type Session struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store, now: time.Now}
}

// State reports where the session is in its lifecycle. A stored token
// whose embedded expiry has passed reports Expired until cleared.
func (s *Session) State() State {
	token, _, ok := s.store.Load()
	if !ok || token == "" {
		return Anonymous
	}
	exp, err := tokenExpiry(token)
	if err != nil || !s.now().Before(exp) {
		return Expired
	}
	return Authenticated
}

// SetCredentials records a successful login or registration.
func (s *Session) SetCredentials(token string, profile Profile) {
	s.store.Save(token, profile)
}

// Clear drops the local state. The token itself stays valid server-side
// until it expires.
func (s *Session) Clear() {
	s.store.Clear()
}

// Token returns the stored token while the session is authenticated.
func (s *Session) Token() (string, bool) {
	if s.State() != Authenticated {
		return "", false
	}
	token, _, _ := s.store.Load()
	return token, true
}

// User returns the stored profile while the session is authenticated.
func (s *Session) User() (*Profile, bool) {
	if s.State() != Authenticated {
		return nil, false
	}
	_, profile, _ := s.store.Load()
	return profile, profile != nil
}

// CheckExpiry clears a stale session before any protected call is
// attempted, and reports whether it did. Call it on startup.
func (s *Session) CheckExpiry() bool {
	if s.State() == Expired {
		s.Clear()
		return true
	}
	return false
}

// tokenExpiry decodes the exp claim without verifying the signature.
// A token that cannot be decoded is treated as expired.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, jwt.ErrTokenInvalidClaims
	}
	return exp.Time, nil
}
