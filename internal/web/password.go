package web

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/citu-lostit/lostit/internal/model"
	"github.com/citu-lostit/lostit/internal/store"
)

// forgotData is the forgot-password page payload.
type forgotData struct {
	PageData
	// ResetURL is set once a reset token has been issued.
	ResetURL string
}

// resetData is the reset-password page payload.
type resetData struct {
	PageData
	Token string
	// Invalid marks a token that cannot be redeemed; the form is hidden.
	Invalid bool
}

const forgotConfirmation = "If that email belongs to an admin account, a reset link has been issued."

// ForgotPasswordPage handles GET /forgot-password.
func (s *Server) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "forgot_password.html", &forgotData{
		PageData: PageData{Title: "Forgot Password"},
	})
}

// ForgotPasswordSubmit handles POST /forgot-password. A known email yields a
// single-use, time-limited reset link; an unknown email yields the same
// confirmation so accounts cannot be enumerated. Stored passwords are never
// shown.
func (s *Server) ForgotPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if email == "" {
		s.Templates.Render(w, "forgot_password.html", &forgotData{
			PageData: PageData{Title: "Forgot Password", Error: "Enter your email address."},
		})
		return
	}

	admin, err := s.Backend.FindAdminByEmail(r.Context(), email)
	if err != nil {
		slog.Error("failed to look up admin by email", "error", err)
		s.Templates.Render(w, "forgot_password.html", &forgotData{
			PageData: PageData{Title: "Forgot Password", Error: "Unable to reach the inventory service. Please try again."},
		})
		return
	}

	data := &forgotData{
		PageData: PageData{Title: "Forgot Password", Success: forgotConfirmation},
	}

	if admin != nil {
		rt, err := store.CreateResetToken(r.Context(), s.DB, admin.AdminID, admin.Email)
		if err != nil {
			slog.Error("failed to create reset token", "error", err)
			s.Templates.Render(w, "forgot_password.html", &forgotData{
				PageData: PageData{Title: "Forgot Password", Error: "Could not issue a reset link. Please try again."},
			})
			return
		}
		// No mail service is wired up, so the link is handed to the
		// requester directly. The token is single-use and expires.
		data.ResetURL = "/reset-password?token=" + rt.Token
		slog.Info("reset token issued", "admin", admin.Username)
	}

	s.Templates.Render(w, "forgot_password.html", data)
}

// ResetPasswordPage handles GET /reset-password.
func (s *Server) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	rt, err := store.GetResetToken(r.Context(), s.DB, token)
	if err != nil {
		slog.Error("failed to look up reset token", "error", err)
	}
	if rt == nil {
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: "This reset link is invalid or has expired."},
			Invalid:  true,
		})
		return
	}

	s.Templates.Render(w, "reset_password.html", &resetData{
		PageData: PageData{Title: "Reset Password"},
		Token:    token,
	})
}

// ResetPasswordSubmit handles POST /reset-password. On success the token is
// consumed and the admin's record updated with a fresh bcrypt hash.
func (s *Server) ResetPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	rt, err := store.GetResetToken(r.Context(), s.DB, token)
	if err != nil {
		slog.Error("failed to look up reset token", "error", err)
	}
	if rt == nil {
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: "This reset link is invalid or has expired."},
			Invalid:  true,
		})
		return
	}

	if err := model.ValidatePasswordPair(password, confirm); err != nil {
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: err.Error()},
			Token:    token,
		})
		return
	}

	// Re-fetch the account so the full record can be sent back.
	admin, err := s.Backend.FindAdminByEmail(r.Context(), rt.Email)
	if err != nil || admin == nil {
		slog.Error("failed to load admin for reset", "error", err)
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: "Could not reset the password. Please try again."},
			Token:    token,
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: "Could not reset the password. Please try again."},
			Token:    token,
		})
		return
	}
	admin.Password = string(hash)

	if _, err := s.Backend.UpdateAdminDetails(r.Context(), admin.AdminID, admin); err != nil {
		slog.Error("failed to update admin password", "error", err)
		s.Templates.Render(w, "reset_password.html", &resetData{
			PageData: PageData{Title: "Reset Password", Error: backendMessage(err, "Could not reset the password. Please try again.")},
			Token:    token,
		})
		return
	}

	// Consume only after the backend accepted the update, so a failed
	// attempt can be retried with the same link.
	if _, err := store.ConsumeResetToken(r.Context(), s.DB, token); err != nil {
		slog.Error("failed to consume reset token", "error", err)
	}

	slog.Info("password reset", "admin", admin.Username)
	s.Templates.Render(w, "reset_password.html", &resetData{
		PageData: PageData{Title: "Reset Password", Success: "Your password has been reset. You can now log in."},
		Invalid:  true,
	})
}
