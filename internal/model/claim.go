package model

// Claim records that a specific person retrieved a specific item.
// Creating or deleting a claim never changes the item's status; the backend
// keeps the two records independent.
type Claim struct {
	ClaimID     int64  `json:"claimId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	StudEmail   string `json:"studEmail"`
	DateClaimed string `json:"dateClaimed,omitempty"`
	Item        *Item  `json:"item,omitempty"`
}

// ItemName returns the claimed item's name, or a placeholder when the item
// reference was not resolved by the backend.
func (c *Claim) ItemName() string {
	if c.Item == nil || c.Item.ItemName == "" {
		return "Unknown Item"
	}
	return c.Item.ItemName
}
