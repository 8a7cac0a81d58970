package web

import (
	"database/sql"
	"net/http"

	"github.com/citu-lostit/lostit/internal/backend"
	webembed "github.com/citu-lostit/lostit/web"
)

// NewRouter creates the page router with all routes registered.
func NewRouter(db *sql.DB, client *backend.Client, secret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Backend:   client,
		Templates: templates,
		Secret:    secret,
	}

	mux := http.NewServeMux()
	guard := CookieAuthMiddleware(secret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)
	mux.HandleFunc("GET /register", s.RegisterPage)
	mux.HandleFunc("POST /register", s.RegisterSubmit)
	mux.HandleFunc("GET /forgot-password", s.ForgotPasswordPage)
	mux.HandleFunc("POST /forgot-password", s.ForgotPasswordSubmit)
	mux.HandleFunc("GET /reset-password", s.ResetPasswordPage)
	mux.HandleFunc("POST /reset-password", s.ResetPasswordSubmit)

	// Public lost-item submission form.
	mux.HandleFunc("GET /report", s.ReportFormPage)
	mux.HandleFunc("POST /report", s.ReportFormSubmit)

	// Authenticated routes.
	mux.Handle("GET /{$}", guard(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /inventory", guard(http.HandlerFunc(s.InventoryPage)))
	mux.Handle("POST /inventory", guard(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("POST /inventory/{id}", guard(http.HandlerFunc(s.ItemUpdateSubmit)))
	mux.Handle("POST /inventory/{id}/delete", guard(http.HandlerFunc(s.ItemDeleteSubmit)))

	mux.Handle("GET /claims", guard(http.HandlerFunc(s.ClaimsPage)))
	mux.Handle("POST /claims", guard(http.HandlerFunc(s.ClaimCreateSubmit)))
	mux.Handle("POST /claims/{id}/delete", guard(http.HandlerFunc(s.ClaimDeleteSubmit)))

	mux.Handle("GET /reports", guard(http.HandlerFunc(s.ReportsPage)))
	mux.Handle("POST /reports/{id}/accept", guard(http.HandlerFunc(s.ReportAcceptSubmit)))
	mux.Handle("POST /reports/{id}/decline", guard(http.HandlerFunc(s.ReportDeclineSubmit)))

	mux.Handle("GET /profile", guard(http.HandlerFunc(s.ProfilePage)))
	mux.Handle("POST /profile", guard(http.HandlerFunc(s.ProfileSubmit)))
	mux.Handle("GET /profile/picture", guard(http.HandlerFunc(s.ProfilePictureGet)))
	mux.Handle("POST /profile/picture", guard(http.HandlerFunc(s.ProfilePictureSubmit)))
	mux.Handle("POST /profile/picture/delete", guard(http.HandlerFunc(s.ProfilePictureDelete)))

	return mux, nil
}
