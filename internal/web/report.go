package web

import (
	"log/slog"
	"net/http"

	"github.com/citu-lostit/lostit/internal/model"
)

// reportFormData is the public lost-item submission page payload.
type reportFormData struct {
	PageData
	Categories []model.Category
	Locations  []model.Location
	Form       itemForm
}

func (s *Server) loadReportFormData(r *http.Request) *reportFormData {
	data := &reportFormData{
		PageData: PageData{Title: "Report a Found Item"},
	}

	categories, err := s.Backend.ListCategories(r.Context())
	if err != nil {
		slog.Error("failed to fetch categories", "error", err)
	}
	data.Categories = categories

	locations, err := s.Backend.ListLocations(r.Context())
	if err != nil {
		slog.Error("failed to fetch locations", "error", err)
	}
	data.Locations = locations

	return data
}

// ReportFormPage handles GET /report, the public submission form for
// found items. No session is required.
func (s *Server) ReportFormPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "report_form.html", s.loadReportFormData(r))
}

// ReportFormSubmit handles POST /report. Submitted items land in the
// review queue with the Reported status until an admin accepts them.
func (s *Server) ReportFormSubmit(w http.ResponseWriter, r *http.Request) {
	form := itemFormFromRequest(r)
	form.Status = model.ItemStatusReported

	fail := func(message string) {
		data := s.loadReportFormData(r)
		data.Form = form
		data.Error = message
		s.Templates.Render(w, "report_form.html", data)
	}

	if err := model.ValidateItemForm(form.ItemName, form.CategoryID, form.LocationID); err != nil {
		fail(err.Error())
		return
	}

	item := form.toItem()
	if err := s.Backend.AddReportedItem(r.Context(), item); err != nil {
		slog.Error("failed to submit reported item", "error", err)
		fail(backendMessage(err, "Failed to submit the report. Please try again."))
		return
	}

	slog.Info("item reported", "item", item.ItemName)
	data := s.loadReportFormData(r)
	data.Success = "Thank you! Your report has been submitted for review."
	s.Templates.Render(w, "report_form.html", data)
}
