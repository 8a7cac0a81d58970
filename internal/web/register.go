package web

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/citu-lostit/lostit/internal/backend"
	"github.com/citu-lostit/lostit/internal/model"
)

// registerData is the registration page payload; the submitted fields are
// echoed back so a failed attempt keeps the form filled.
type registerData struct {
	PageData
	Form model.Admin
}

// RegisterPage handles GET /register.
func (s *Server) RegisterPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "register.html", &registerData{
		PageData: PageData{Title: "Register"},
	})
}

// RegisterSubmit handles POST /register. Validation failures block the
// backend request entirely; backend failures surface inline.
func (s *Server) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	form := model.Admin{
		Username:    r.FormValue("username"),
		Email:       r.FormValue("email"),
		FullName:    r.FormValue("fullName"),
		PhoneNumber: r.FormValue("phoneNumber"),
	}
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	fail := func(message string) {
		s.Templates.Render(w, "register.html", &registerData{
			PageData: PageData{Title: "Register", Error: message},
			Form:     form,
		})
	}

	if err := model.ValidateRegistration(&form); err != nil {
		fail(err.Error())
		return
	}
	if err := model.ValidatePasswordPair(password, confirm); err != nil {
		fail(err.Error())
		return
	}

	// Usernames must be unique; the backend does not enforce it.
	existing, err := s.Backend.FindAdminByUsername(r.Context(), form.Username)
	if err != nil {
		slog.Error("failed to check username", "error", err)
		fail("Unable to reach the inventory service. Please try again.")
		return
	}
	if existing != nil {
		fail("That username is already taken.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		fail("Registration failed. Please try again.")
		return
	}
	form.Password = string(hash)

	if err := s.Backend.CreateAdmin(r.Context(), &form); err != nil {
		slog.Error("failed to create admin", "error", err)
		fail(backendMessage(err, "Registration failed. Please try again."))
		return
	}

	slog.Info("admin registered", "user", form.Username)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// backendMessage extracts the backend's own error message when one exists,
// falling back to a page-level default.
func backendMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
