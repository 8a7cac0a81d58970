package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/citu-lostit/lostit/internal/auth"
	"github.com/citu-lostit/lostit/internal/imaging"
	"github.com/citu-lostit/lostit/internal/model"
)

// profileField is one profile form field with its per-field edit toggle.
// Fields start read-only and become editable through an explicit toggle.
type profileField struct {
	Name      string
	Label     string
	Value     string
	Editing   bool
	ToggleURL string
}

// profileData is the profile page payload.
type profileData struct {
	PageData
	Fields          []profileField
	PasswordEditing bool
	PasswordToggle  string
}

var profileFieldLabels = []struct{ name, label string }{
	{"fullName", "Full Name"},
	{"email", "Email"},
	{"phoneNumber", "Phone Number"},
}

// editStateFromQuery reads the per-field edit toggles as a map from field
// name to boolean.
func editStateFromQuery(r *http.Request) map[string]bool {
	editing := make(map[string]bool)
	for _, name := range r.URL.Query()["edit"] {
		editing[name] = true
	}
	return editing
}

// toggleURL builds the profile URL with the given field's edit state flipped.
func toggleURL(editing map[string]bool, field string) string {
	values := url.Values{}
	for name, on := range editing {
		if on && name != field {
			values.Add("edit", name)
		}
	}
	if !editing[field] {
		values.Add("edit", field)
	}
	if len(values) == 0 {
		return "/profile"
	}
	return "/profile?" + values.Encode()
}

func (s *Server) profileData(r *http.Request, user *auth.SessionUser) *profileData {
	editing := editStateFromQuery(r)

	values := map[string]string{
		"fullName":    user.FullName,
		"email":       user.Email,
		"phoneNumber": user.PhoneNumber,
	}

	data := &profileData{
		PageData:        PageData{Title: "My Profile", User: user},
		PasswordEditing: editing["password"],
		PasswordToggle:  toggleURL(editing, "password"),
	}
	for _, f := range profileFieldLabels {
		data.Fields = append(data.Fields, profileField{
			Name:      f.name,
			Label:     f.label,
			Value:     values[f.name],
			Editing:   editing[f.name],
			ToggleURL: toggleURL(editing, f.name),
		})
	}
	return data
}

// ProfilePage handles GET /profile.
func (s *Server) ProfilePage(w http.ResponseWriter, r *http.Request) {
	user := SessionUserFrom(r.Context())
	s.Templates.Render(w, "profile.html", s.profileData(r, user))
}

// ProfileSubmit handles POST /profile. The whole profile object is sent to
// the backend; fields left read-only keep their current values. On success
// the session cookie is re-issued so the stored user object stays in sync.
func (s *Server) ProfileSubmit(w http.ResponseWriter, r *http.Request) {
	user := SessionUserFrom(r.Context())

	fail := func(message string) {
		data := s.profileData(r, user)
		data.Error = message
		s.Templates.Render(w, "profile.html", data)
	}

	// Start from the backend's current record so untouched fields and the
	// password hash survive the full-record update.
	admin, err := s.Backend.FindAdminByUsername(r.Context(), user.Username)
	if err != nil {
		slog.Error("failed to load admin for profile update", "error", err)
		fail("Unable to reach the inventory service. Please try again.")
		return
	}
	if admin == nil {
		fail("Your account could not be found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		fail("Invalid form submission.")
		return
	}
	if r.PostForm.Has("fullName") {
		admin.FullName = r.PostFormValue("fullName")
	}
	if r.PostForm.Has("email") {
		admin.Email = r.PostFormValue("email")
	}
	if r.PostForm.Has("phoneNumber") {
		admin.PhoneNumber = r.PostFormValue("phoneNumber")
	}

	// Password only changes when a new one was typed.
	if password := r.PostFormValue("password"); password != "" {
		if err := model.ValidatePasswordPair(password, r.PostFormValue("confirmPassword")); err != nil {
			fail(err.Error())
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("failed to hash password", "error", err)
			fail("Failed to update profile. Please try again.")
			return
		}
		admin.Password = string(hash)
	}

	updated, err := s.Backend.UpdateAdminDetails(r.Context(), admin.AdminID, admin)
	if err != nil {
		slog.Error("failed to update profile", "error", err)
		fail(backendMessage(err, "Failed to update profile. Please try again."))
		return
	}

	// Re-issue the session so the persisted user object carries the edits.
	token, err := auth.GenerateToken(s.Secret, auth.NewSessionUser(updated))
	if err != nil {
		slog.Error("failed to refresh session", "error", err)
	} else {
		setSessionCookie(w, token)
	}

	slog.Info("profile updated", "user", updated.Username)
	refreshed := auth.NewSessionUser(updated)
	data := s.profileData(r, &refreshed)
	data.Success = "Profile updated successfully."
	s.Templates.Render(w, "profile.html", data)
}

// ProfilePictureGet handles GET /profile/picture: proxies the session
// admin's picture from the backend.
func (s *Server) ProfilePictureGet(w http.ResponseWriter, r *http.Request) {
	user := SessionUserFrom(r.Context())

	data, mime, err := s.Backend.GetProfilePicture(r.Context(), user.AdminID)
	if err != nil {
		slog.Error("failed to get profile picture", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write picture response", "error", err)
	}
}

// ProfilePictureSubmit handles POST /profile/picture: processes the upload
// locally, then forwards the normalized JPEG as multipart form data.
func (s *Server) ProfilePictureSubmit(w http.ResponseWriter, r *http.Request) {
	user := SessionUserFrom(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		s.failProfile(w, r, user, "File too large.")
		return
	}

	file, _, err := r.FormFile("picture")
	if err != nil {
		s.failProfile(w, r, user, "Choose a picture to upload.")
		return
	}
	defer file.Close()

	// Sniff the format, downscale, and compress before it leaves this host.
	result, err := imaging.Process(file)
	if err != nil {
		s.failProfile(w, r, user, err.Error())
		return
	}

	if err := s.Backend.UploadProfilePicture(r.Context(), user.AdminID, result.Data, "profile.jpg"); err != nil {
		slog.Error("failed to upload profile picture", "error", err)
		s.failProfile(w, r, user, backendMessage(err, "Failed to upload picture. Please try again."))
		return
	}

	slog.Info("profile picture uploaded", "user", user.Username)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// ProfilePictureDelete handles POST /profile/picture/delete.
func (s *Server) ProfilePictureDelete(w http.ResponseWriter, r *http.Request) {
	user := SessionUserFrom(r.Context())

	if err := s.Backend.RemoveProfilePicture(r.Context(), user.AdminID); err != nil {
		slog.Error("failed to remove profile picture", "error", err)
		s.failProfile(w, r, user, backendMessage(err, "Failed to remove picture. Please try again."))
		return
	}

	slog.Info("profile picture removed", "user", user.Username)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (s *Server) failProfile(w http.ResponseWriter, r *http.Request, user *auth.SessionUser, message string) {
	data := s.profileData(r, user)
	data.Error = strings.TrimSpace(message)
	s.Templates.Render(w, "profile.html", data)
}
