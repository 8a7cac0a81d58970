package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/citu-lostit/lostit/internal/model"
)

// claimForm holds the add-claim dialog fields.
type claimForm struct {
	ItemID      int64
	FirstName   string
	LastName    string
	StudEmail   string
	DateClaimed string
}

// claimsData is the claim log page payload.
type claimsData struct {
	PageData
	Claims []model.Claim
	// Items populates the claim dialog's item selector.
	Items    []model.Item
	Search   string
	ShowForm bool
	Form     claimForm
}

// loadClaimsData fetches the claim log and the item list for the selector.
// The two fetches are independent; a failed item fetch leaves the selector
// empty without failing the page.
func (s *Server) loadClaimsData(r *http.Request) *claimsData {
	data := &claimsData{
		PageData: PageData{Title: "Claim Log", User: SessionUserFrom(r.Context())},
		Search:   r.FormValue("q"),
	}

	claims, err := s.Backend.ListClaims(r.Context())
	if err != nil {
		slog.Error("failed to list claims", "error", err)
		data.Error = "Failed to load claims."
	}
	data.Claims = model.FilterClaims(claims, model.ClaimFilter{Search: data.Search})

	if data.Items, err = s.Backend.ListItems(r.Context()); err != nil {
		slog.Error("failed to list items for claim form", "error", err)
	}

	if r.FormValue("add") != "" {
		data.ShowForm = true
	}

	return data
}

// ClaimsPage handles GET /claims.
func (s *Server) ClaimsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "claims.html", s.loadClaimsData(r))
}

// ClaimCreateSubmit handles POST /claims. Validation runs before any
// mutation request; success redirects back to the list, which re-fetches.
func (s *Server) ClaimCreateSubmit(w http.ResponseWriter, r *http.Request) {
	itemID, _ := strconv.ParseInt(r.FormValue("itemId"), 10, 64)
	form := claimForm{
		ItemID:      itemID,
		FirstName:   r.FormValue("firstName"),
		LastName:    r.FormValue("lastName"),
		StudEmail:   r.FormValue("studEmail"),
		DateClaimed: r.FormValue("dateClaimed"),
	}

	fail := func(message string) {
		data := s.loadClaimsData(r)
		data.Error = message
		data.ShowForm = true
		data.Form = form
		s.Templates.Render(w, "claims.html", data)
	}

	if err := model.ValidateClaimForm(form.ItemID, form.FirstName, form.LastName, form.StudEmail); err != nil {
		fail(err.Error())
		return
	}

	claim := &model.Claim{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		StudEmail:   form.StudEmail,
		DateClaimed: form.DateClaimed,
	}
	if err := s.Backend.CreateClaim(r.Context(), form.ItemID, claim); err != nil {
		slog.Error("failed to create claim", "error", err)
		fail(backendMessage(err, "Failed to create claim. Please try again."))
		return
	}

	slog.Info("claim created", "user", sessionUsername(r), "item", form.ItemID, "claimant", form.StudEmail)
	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}

// ClaimDeleteSubmit handles POST /claims/{id}/delete. The confirmation step
// happens in the browser before this request is made.
func (s *Server) ClaimDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Backend.DeleteClaim(r.Context(), id); err != nil {
		slog.Error("failed to delete claim", "error", err)
		data := s.loadClaimsData(r)
		data.Error = backendMessage(err, "Failed to delete claim. Please try again.")
		s.Templates.Render(w, "claims.html", data)
		return
	}

	slog.Info("claim deleted", "user", sessionUsername(r), "claim", id)
	http.Redirect(w, r, "/claims", http.StatusSeeOther)
}
