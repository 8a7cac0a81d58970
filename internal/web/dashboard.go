package web

import (
	"log/slog"
	"net/http"

	"github.com/citu-lostit/lostit/internal/model"
)

// dashboardData is the dashboard payload.
type dashboardData struct {
	PageData
	Stats model.ItemStats
}

// Dashboard handles GET /. All counts are derived client-side from the full
// item list; the backend has no aggregation endpoint.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	data := &dashboardData{
		PageData: PageData{Title: "Dashboard", User: SessionUserFrom(r.Context())},
	}

	items, err := s.Backend.ListItems(r.Context())
	if err != nil {
		slog.Error("failed to list items for dashboard", "error", err)
		data.Error = "Failed to fetch items."
	}
	data.Stats = model.ComputeItemStats(items)

	s.Templates.Render(w, "dashboard.html", data)
}
