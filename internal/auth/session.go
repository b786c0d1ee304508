package auth

import "sync"

// Session holds the currently logged-in user. It is set on login, cleared on
// logout, and read by the audit layer to stamp change-log entries. Audit
// entry construction rejects a blank username, so a forgotten login surfaces
// at the first audited write.
type Session struct {
	mu   sync.RWMutex
	user *User
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// SetCurrentUser records the logged-in user.
func (s *Session) SetCurrentUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// CurrentUser returns the logged-in user, if any.
func (s *Session) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}

	return *s.user, true
}

// Username returns the logged-in username or the empty string.
func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return ""
	}

	return s.user.Username
}

// Clear logs the user out.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
