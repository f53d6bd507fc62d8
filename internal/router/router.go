package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sabron12/Sabron/internal/auth"
	"github.com/sabron12/Sabron/internal/handler"
	mw "github.com/sabron12/Sabron/internal/middleware"
)

func New(
	sessions *auth.SessionManager,
	jwtSecret string,
	authH *handler.AuthHandler,
	subH *handler.SubmissionHandler,
	adminH *handler.AdminHandler,
	dlH *handler.DownloadHandler,
	dashH *handler.DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)

	// Public routes. The HTML pages themselves are served elsewhere; these
	// endpoints only answer with service info.
	r.Get("/", serviceInfo)
	r.Get("/admin", serviceInfo)

	r.Post("/api/admin/login", authH.Login)
	r.Get("/admin/logout", authH.LogoutRedirect)
	r.Post("/logout", authH.Logout)

	r.Post("/submit", subH.SubmitDocuments)
	r.Post("/submit-kuccps", subH.SubmitKUCCPS)

	r.Get("/api/download/{filename}", dlH.Download)

	// Admin-only routes
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAdmin(sessions, jwtSecret))

		r.Get("/admin/dashboard", dashH.Dashboard)
		r.Get("/api/admin/submissions", adminH.ListSubmissions)
		r.Delete("/api/admin/clear-submissions", adminH.ClearSubmissions)
		r.Get("/api/admin/blocked-users", adminH.ListBlockedUsers)
		r.Post("/api/admin/block-user", adminH.BlockUser)
		r.Post("/api/admin/unblock-user", adminH.UnblockUser)
	})

	return r
}

func serviceInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"service":"sabron-portal","status":"ok"}`))
}
