package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/citu-lostit/lostit/internal/model"
)

// reportsData is the report review queue payload.
type reportsData struct {
	PageData
	Items      []model.Item
	Categories []model.Category
	Locations  []model.Location
	Filter     model.ItemFilter
	// Summary counts over the filtered queue.
	Total     int
	Claimed   int
	Unclaimed int
}

// loadReportsData fetches the item collection and narrows it to the report
// review queue, then applies the page filter and derives the summary chips.
func (s *Server) loadReportsData(r *http.Request) *reportsData {
	data := &reportsData{
		PageData: PageData{Title: "Item Reports", User: SessionUserFrom(r.Context())},
		Filter:   itemFilterFromQuery(r),
	}

	items, err := s.Backend.ListItems(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		data.Error = "Failed to fetch items. Please try again later."
	}

	reported := model.ReportedItems(items)
	data.Items = model.FilterItems(reported, data.Filter)

	data.Total = len(data.Items)
	for i := range data.Items {
		switch data.Items[i].Status {
		case model.ItemStatusClaimed:
			data.Claimed++
		case model.ItemStatusUnclaimed:
			data.Unclaimed++
		}
	}

	if data.Categories, err = s.Backend.ListCategories(r.Context()); err != nil {
		slog.Error("failed to list categories", "error", err)
	}
	if data.Locations, err = s.Backend.ListLocations(r.Context()); err != nil {
		slog.Error("failed to list locations", "error", err)
	}

	return data
}

// ReportsPage handles GET /reports.
func (s *Server) ReportsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "reports.html", s.loadReportsData(r))
}

// ReportAcceptSubmit handles POST /reports/{id}/accept: promotes a reported
// item into normal inventory via the dedicated transfer endpoint.
func (s *Server) ReportAcceptSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Backend.TransferToInventory(r.Context(), id); err != nil {
		slog.Error("failed to transfer item", "error", err)
		data := s.loadReportsData(r)
		data.Error = backendMessage(err, "Failed to transfer item to inventory. Please try again.")
		s.Templates.Render(w, "reports.html", data)
		return
	}

	slog.Info("reported item accepted", "user", sessionUsername(r), "item", id)
	http.Redirect(w, r, "/reports", http.StatusSeeOther)
}

// ReportDeclineSubmit handles POST /reports/{id}/decline: removes a reported
// item outright.
func (s *Server) ReportDeclineSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Backend.DeleteItem(r.Context(), id); err != nil {
		slog.Error("failed to decline reported item", "error", err)
		data := s.loadReportsData(r)
		data.Error = backendMessage(err, "Failed to delete item. Please try again.")
		s.Templates.Render(w, "reports.html", data)
		return
	}

	slog.Info("reported item declined", "user", sessionUsername(r), "item", id)
	http.Redirect(w, r, "/reports", http.StatusSeeOther)
}
