package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/citu-lostit/lostit/internal/model"
)

// itemForm holds the add/edit dialog fields so a failed submission keeps the
// dialog open and filled.
type itemForm struct {
	ItemName    string
	Description string
	Status      string
	CategoryID  int64
	LocationID  int64
}

// inventoryData is the inventory page payload.
type inventoryData struct {
	PageData
	Items      []model.Item
	Categories []model.Category
	Locations  []model.Location
	Filter     model.ItemFilter
	ShowForm   bool
	EditingID  int64
	Form       itemForm
}

// itemFilterFromQuery builds the pure list filter from query parameters.
func itemFilterFromQuery(r *http.Request) model.ItemFilter {
	categoryID, _ := strconv.ParseInt(r.FormValue("category"), 10, 64)
	locationID, _ := strconv.ParseInt(r.FormValue("location"), 10, 64)
	return model.ItemFilter{
		Search:     r.FormValue("q"),
		CategoryID: categoryID,
		LocationID: locationID,
		Status:     r.FormValue("status"),
	}
}

// loadInventoryData fetches the item collection and reference lists. The
// reference fetches are independent: a failure degrades selector options and
// name resolution to "N/A" instead of failing the page.
func (s *Server) loadInventoryData(r *http.Request) *inventoryData {
	data := &inventoryData{
		PageData: PageData{Title: "Inventory", User: SessionUserFrom(r.Context())},
		Filter:   itemFilterFromQuery(r),
		Form:     itemForm{Status: model.ItemStatusActive},
	}

	items, err := s.Backend.ListItems(r.Context())
	if err != nil {
		slog.Error("failed to list items", "error", err)
		data.Error = "Failed to fetch items."
	}
	data.Items = model.FilterItems(items, data.Filter)

	if data.Categories, err = s.Backend.ListCategories(r.Context()); err != nil {
		slog.Error("failed to list categories", "error", err)
	}
	if data.Locations, err = s.Backend.ListLocations(r.Context()); err != nil {
		slog.Error("failed to list locations", "error", err)
	}

	// Pre-fill the dialog when editing an existing item.
	if editID, _ := strconv.ParseInt(r.FormValue("edit"), 10, 64); editID != 0 {
		for i := range items {
			if items[i].ItemID == editID {
				data.ShowForm = true
				data.EditingID = editID
				data.Form = itemFormFrom(&items[i])
				break
			}
		}
	}
	if r.FormValue("add") != "" {
		data.ShowForm = true
	}

	return data
}

func itemFormFrom(item *model.Item) itemForm {
	f := itemForm{
		ItemName:    item.ItemName,
		Description: item.Description,
		Status:      item.Status,
	}
	if item.Category != nil {
		f.CategoryID = item.Category.CategoryID
	}
	if item.Location != nil {
		f.LocationID = item.Location.LocationID
	}
	return f
}

// InventoryPage handles GET /inventory.
func (s *Server) InventoryPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "inventory.html", s.loadInventoryData(r))
}

// itemFormFromRequest reads the submitted dialog fields.
func itemFormFromRequest(r *http.Request) itemForm {
	categoryID, _ := strconv.ParseInt(r.FormValue("categoryId"), 10, 64)
	locationID, _ := strconv.ParseInt(r.FormValue("locationId"), 10, 64)
	status := r.FormValue("status")
	if status == "" {
		status = model.ItemStatusActive
	}
	return itemForm{
		ItemName:    r.FormValue("itemName"),
		Description: r.FormValue("description"),
		Status:      status,
		CategoryID:  categoryID,
		LocationID:  locationID,
	}
}

func (f itemForm) toItem() *model.Item {
	return &model.Item{
		ItemName:    f.ItemName,
		Description: f.Description,
		Status:      f.Status,
		Category:    &model.Category{CategoryID: f.CategoryID},
		Location:    &model.Location{LocationID: f.LocationID},
	}
}

// failInventoryForm re-renders the page with the dialog open, its fields
// preserved, and the error shown inline.
func (s *Server) failInventoryForm(w http.ResponseWriter, r *http.Request, editingID int64, form itemForm, message string) {
	data := s.loadInventoryData(r)
	data.Error = message
	data.ShowForm = true
	data.EditingID = editingID
	data.Form = form
	s.Templates.Render(w, "inventory.html", data)
}

// ItemCreateSubmit handles POST /inventory. Validation runs before any
// mutation request is issued; success triggers a redirect whose GET re-fetches
// the collection.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	form := itemFormFromRequest(r)

	if err := model.ValidateItemForm(form.ItemName, form.CategoryID, form.LocationID); err != nil {
		s.failInventoryForm(w, r, 0, form, err.Error())
		return
	}

	if err := s.Backend.AddItem(r.Context(), form.toItem()); err != nil {
		slog.Error("failed to add item", "error", err)
		s.failInventoryForm(w, r, 0, form, backendMessage(err, "Error saving item. Please try again."))
		return
	}

	slog.Info("item added", "user", sessionUsername(r), "item", form.ItemName)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// ItemUpdateSubmit handles POST /inventory/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	form := itemFormFromRequest(r)
	if err := model.ValidateItemForm(form.ItemName, form.CategoryID, form.LocationID); err != nil {
		s.failInventoryForm(w, r, id, form, err.Error())
		return
	}

	if err := s.Backend.UpdateItem(r.Context(), id, form.toItem()); err != nil {
		slog.Error("failed to update item", "error", err)
		s.failInventoryForm(w, r, id, form, backendMessage(err, "Error saving item. Please try again."))
		return
	}

	slog.Info("item updated", "user", sessionUsername(r), "item", form.ItemName)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// ItemDeleteSubmit handles POST /inventory/{id}/delete. The confirmation
// step happens in the browser before this request is made.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := s.Backend.DeleteItem(r.Context(), id); err != nil {
		slog.Error("failed to delete item", "error", err)
		data := s.loadInventoryData(r)
		data.Error = backendMessage(err, "Error deleting item. Please try again.")
		s.Templates.Render(w, "inventory.html", data)
		return
	}

	slog.Info("item deleted", "user", sessionUsername(r), "item", id)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// sessionUsername returns the logged-in username for log lines.
func sessionUsername(r *http.Request) string {
	if user := SessionUserFrom(r.Context()); user != nil {
		return user.Username
	}
	return ""
}
