package auth

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "sabron-session"

	// sessionMaxAge is the idle window before an admin session expires.
	sessionMaxAge = 5 * 60
)

// SessionManager owns the cookie-backed admin session state. It is
// constructor-injected so tests can run isolated instances.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	}
	return &SessionManager{store: store}
}

// IsAdmin reports whether the request carries an authenticated admin session.
func (m *SessionManager) IsAdmin(r *http.Request) bool {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return false
	}
	isAdmin, ok := session.Values["is_admin"].(bool)
	return ok && isAdmin
}

// MarkAdmin flags the session as authenticated and writes the cookie.
func (m *SessionManager) MarkAdmin(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values["is_admin"] = true
	return session.Save(r, w)
}

// Destroy clears the session and expires the cookie.
func (m *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, "is_admin")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
