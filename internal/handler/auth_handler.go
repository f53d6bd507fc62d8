package handler

import (
	"net/http"

	"github.com/sabron12/Sabron/internal/auth"
	"github.com/sabron12/Sabron/internal/service"
)

type AuthHandler struct {
	svc       *service.AuthService
	sessions  *auth.SessionManager
	jwtSecret string
}

func NewAuthHandler(svc *service.AuthService, sessions *auth.SessionManager, jwtSecret string) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, jwtSecret: jwtSecret}
}

// Login authenticates the admin. On success it marks the session cookie and
// also returns a bearer token for clients that do not keep cookies.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !h.svc.Verify(req.Username, req.Password) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := h.sessions.MarkAdmin(w, r); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	token, err := auth.GenerateToken(h.jwtSecret, req.Username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Login successful",
		"token":   token,
	})
}

// LogoutRedirect handles the browser logout link: destroy the session, then
// send the admin back to the login page.
func (h *AuthHandler) LogoutRedirect(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Logout is the API variant; it clears the session cookie and reports JSON.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(w, r); err != nil {
		writeError(w, http.StatusInternalServerError, "Logout failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
