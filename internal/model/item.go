package model

// Item represents a tracked lost/found object as stored by the backend.
type Item struct {
	ItemID      int64     `json:"itemId"`
	ItemName    string    `json:"itemName"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Category    *Category `json:"category,omitempty"`
	Location    *Location `json:"location,omitempty"`
	DateAdded   string    `json:"dateAdded,omitempty"`
}

// Item statuses. Usage varies across backend revisions, so all values are
// accepted and rendered as-is.
const (
	ItemStatusUnclaimed = "Unclaimed"
	ItemStatusClaimed   = "Claimed"
	ItemStatusReported  = "Reported"
	ItemStatusActive    = "Active"
	ItemStatusInactive  = "Inactive"
)

// IsReported reports whether the item is still in the report review queue.
func (i *Item) IsReported() bool {
	return i.Status == ItemStatusReported
}

// CategoryName returns the item's category name, or "N/A" when the category
// is absent or unnamed.
func (i *Item) CategoryName() string {
	if i.Category == nil || i.Category.CategoryName == "" {
		return "N/A"
	}
	return i.Category.CategoryName
}

// LocationName returns the item's "building - floor" location label, or "N/A"
// when either part is missing.
func (i *Item) LocationName() string {
	if i.Location == nil {
		return "N/A"
	}
	return i.Location.DisplayName()
}
