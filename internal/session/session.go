// Package session implements the client-held admin session guard: a token
// plus a JSON session record with an absolute expiry, duplicated across two
// storage slots. Expiry is detected lazily at read time; the detecting read
// clears both slots.
package session

import (
	"encoding/json"
	"time"
)

const (
	TokenKey   = "admin_token"
	SessionKey = "admin_session"

	// Duration is the fixed validity window of a session.
	Duration = 24 * time.Hour

	// WarningWindow is how close to expiry ExpiringSoon starts reporting true.
	WarningWindow = time.Hour
)

// Session is the record stored alongside the token. Timestamps are unix
// milliseconds.
type Session struct {
	Username  string `json:"username"`
	LoginTime int64  `json:"loginTime"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Manager owns the two credential slots and exposes the session state
// machine through query/command methods. The clock is injected so tests can
// drive expiry deterministically.
type Manager struct {
	primary   Store
	secondary Store
	now       func() time.Time
}

func NewManager(primary, secondary Store, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{primary: primary, secondary: secondary, now: now}
}

// Establish records a fresh authenticated session with expiry = now +
// Duration, writing both slots.
func (m *Manager) Establish(token, username string) Session {
	now := m.now().UnixMilli()
	s := Session{
		Username:  username,
		LoginTime: now,
		ExpiresAt: now + Duration.Milliseconds(),
	}
	m.writeBoth(token, s)
	return s
}

// IsAuthenticated reports whether a valid, unexpired session exists.
// An expired or malformed session is cleared as a side effect.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	if !ok {
		return false
	}
	if _, hasToken := m.primary.Get(TokenKey); !hasToken {
		return false
	}
	return true
}

// Current returns the stored session if it is still valid. Expired or
// unparseable session data is cleared and reported as absent.
func (m *Manager) Current() (Session, bool) {
	raw, ok := m.primary.Get(SessionKey)
	if !ok {
		return Session{}, false
	}

	var s Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		m.Logout()
		return Session{}, false
	}

	if m.now().UnixMilli() > s.ExpiresAt {
		m.Logout()
		return Session{}, false
	}

	return s, true
}

// Token returns the stored auth token, if any.
func (m *Manager) Token() (string, bool) {
	return m.primary.Get(TokenKey)
}

// Extend pushes the expiry forward to now + Duration without requiring
// re-authentication. It reports false when there is no valid session to
// extend.
func (m *Manager) Extend() bool {
	s, ok := m.Current()
	if !ok {
		return false
	}
	token, ok := m.Token()
	if !ok {
		return false
	}

	s.ExpiresAt = m.now().UnixMilli() + Duration.Milliseconds()
	m.writeBoth(token, s)
	return true
}

// ExpiringSoon reports whether the session will lapse within WarningWindow.
// It reports false when no valid session exists.
func (m *Manager) ExpiringSoon() bool {
	s, ok := m.Current()
	if !ok {
		return false
	}
	remaining := s.ExpiresAt - m.now().UnixMilli()
	return remaining < WarningWindow.Milliseconds()
}

// Logout clears both slots unconditionally.
func (m *Manager) Logout() {
	m.primary.Delete(TokenKey)
	m.primary.Delete(SessionKey)
	m.secondary.Delete(TokenKey)
	m.secondary.Delete(SessionKey)
}

func (m *Manager) writeBoth(token string, s Session) {
	raw, _ := json.Marshal(s)
	ttl := time.Duration(s.ExpiresAt-m.now().UnixMilli()) * time.Millisecond

	m.primary.Set(TokenKey, token, ttl)
	m.primary.Set(SessionKey, string(raw), ttl)
	m.secondary.Set(TokenKey, token, ttl)
	m.secondary.Set(SessionKey, string(raw), ttl)
}
