package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/citu-lostit/lostit/internal/auth"
	"github.com/citu-lostit/lostit/internal/store"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Log In"})
}

// LoginSubmit handles POST /login. The backend has no credential-check
// endpoint, so the account is looked up in the fetched admin list and the
// password verified against its bcrypt hash here.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log In",
			Error: "Enter your username and password.",
		})
		return
	}

	admin, err := s.Backend.FindAdminByUsername(r.Context(), username)
	if err != nil {
		slog.Error("failed to look up admin", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log In",
			Error: "Unable to reach the inventory service. Please try again.",
		})
		return
	}
	if admin == nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log In",
			Error: "Invalid username or password.",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log In",
			Error: "Invalid username or password.",
		})
		return
	}

	token, err := auth.GenerateToken(s.Secret, auth.NewSessionUser(admin))
	if err != nil {
		slog.Error("failed to generate session token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log In",
			Error: "Login failed. Please try again.",
		})
		return
	}

	setSessionCookie(w, token)
	slog.Info("admin logged in", "user", admin.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. The session's JTI is revoked so the cookie
// stops working even before it expires.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("session"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.Secret, cookie.Value); err == nil && claims.ID != "" {
			exp := claims.ExpiresAt.Time
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, exp); err != nil {
				slog.Error("failed to revoke session", "error", err)
			}
		}
	}

	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
