package handler

import (
	"errors"
	"net/http"

	"github.com/sabron12/Sabron/internal/service"
)

type AdminHandler struct {
	subSvc    *service.SubmissionService
	blocklist *service.BlocklistService
}

func NewAdminHandler(subSvc *service.SubmissionService, blocklist *service.BlocklistService) *AdminHandler {
	return &AdminHandler{subSvc: subSvc, blocklist: blocklist}
}

// ListSubmissions returns every submission, newest first. No pagination; the
// dashboard renders the full table.
func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subSvc.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching submissions")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *AdminHandler) ClearSubmissions(w http.ResponseWriter, r *http.Request) {
	if err := h.subSvc.Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Error clearing submissions")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Submissions cleared"})
}

// ListBlockedUsers returns the persisted blocklist, ordered by email.
func (h *AdminHandler) ListBlockedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.blocklist.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error fetching blocked users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) BlockUser(w http.ResponseWriter, r *http.Request) {
	email, ok := h.readEmail(w, r)
	if !ok {
		return
	}
	if err := h.blocklist.Block(email); err != nil {
		h.writeBlocklistError(w, err, "Error blocking user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User blocked"})
}

func (h *AdminHandler) UnblockUser(w http.ResponseWriter, r *http.Request) {
	email, ok := h.readEmail(w, r)
	if !ok {
		return
	}
	if err := h.blocklist.Unblock(email); err != nil {
		h.writeBlocklistError(w, err, "Error unblocking user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User unblocked"})
}

func (h *AdminHandler) readEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		Email string `json:"email"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required.")
		return "", false
	}
	return req.Email, true
}

func (h *AdminHandler) writeBlocklistError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, service.ErrEmailRequired) {
		writeError(w, http.StatusBadRequest, "Email is required.")
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}
