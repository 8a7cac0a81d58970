package model

// Category is server-sourced reference data used to populate selection inputs
// and resolve item category names.
type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Location is server-sourced reference data identifying where an item was
// found.
type Location struct {
	LocationID       int64  `json:"locationId"`
	LocationBuilding string `json:"locationBuilding,omitempty"`
	LocationFloor    string `json:"locationFloor,omitempty"`
}

// DisplayName returns the "building - floor" label, or "N/A" when either part
// is missing.
func (l *Location) DisplayName() string {
	if l == nil || l.LocationBuilding == "" || l.LocationFloor == "" {
		return "N/A"
	}
	return l.LocationBuilding + " - " + l.LocationFloor
}

// CategoryByID resolves a category id against a reference list.
// Returns nil when the id is unknown.
func CategoryByID(categories []Category, id int64) *Category {
	for i := range categories {
		if categories[i].CategoryID == id {
			return &categories[i]
		}
	}
	return nil
}

// LocationByID resolves a location id against a reference list.
// Returns nil when the id is unknown.
func LocationByID(locations []Location, id int64) *Location {
	for i := range locations {
		if locations[i].LocationID == id {
			return &locations[i]
		}
	}
	return nil
}
