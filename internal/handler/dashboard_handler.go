package handler

import (
	"net/http"

	"github.com/sabron12/Sabron/internal/service"
)

type DashboardHandler struct {
	subSvc    *service.SubmissionService
	blocklist *service.BlocklistService
}

func NewDashboardHandler(subSvc *service.SubmissionService, blocklist *service.BlocklistService) *DashboardHandler {
	return &DashboardHandler{subSvc: subSvc, blocklist: blocklist}
}

// Dashboard returns the counters the admin page shows on load.
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	subCount, err := h.subSvc.Count()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error loading dashboard")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"submissionCount": subCount,
		"blockedCount":    h.blocklist.Count(),
	})
}
