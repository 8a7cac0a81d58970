package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/citu-lostit/lostit/internal/auth"
	"github.com/citu-lostit/lostit/internal/backend"
	"github.com/citu-lostit/lostit/internal/model"
	webembed "github.com/citu-lostit/lostit/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusClass": func(status string) string {
			switch status {
			case "Claimed":
				return "status-claimed"
			case "Unclaimed":
				return "status-unclaimed"
			case "Reported":
				return "status-reported"
			case "Inactive":
				return "status-inactive"
			default:
				return "status-active"
			}
		},
		"orNA": func(s string) string {
			if s == "" {
				return "N/A"
			}
			return s
		},
		"itemStatuses": func() []string {
			return []string{
				model.ItemStatusActive,
				model.ItemStatusInactive,
				model.ItemStatusUnclaimed,
				model.ItemStatusClaimed,
				model.ItemStatusReported,
			}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	pages := []string{
		"login.html",
		"register.html",
		"forgot_password.html",
		"reset_password.html",
		"dashboard.html",
		"inventory.html",
		"claims.html",
		"reports.html",
		"report_form.html",
		"profile.html",
	}

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.SessionUser
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	Backend   *backend.Client
	Templates *Templates
	Secret    string
}
