package model

import "strings"

// ItemFilter is a pure predicate over an already-fetched item list.
// Search matches case-insensitive substrings on name and description; the id
// and status fields match exactly. Zero values mean "no constraint", so
// independent fields commute and the whole filter is idempotent.
type ItemFilter struct {
	Search     string
	CategoryID int64
	LocationID int64
	Status     string
}

// Match reports whether the item satisfies every set constraint.
func (f ItemFilter) Match(item *Item) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.ItemName), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	if f.CategoryID != 0 {
		if item.Category == nil || item.Category.CategoryID != f.CategoryID {
			return false
		}
	}
	if f.LocationID != 0 {
		if item.Location == nil || item.Location.LocationID != f.LocationID {
			return false
		}
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	return true
}

// FilterItems returns the items matching the filter, preserving order.
func FilterItems(items []Item, f ItemFilter) []Item {
	var out []Item
	for i := range items {
		if f.Match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// ClaimFilter matches claims by a case-insensitive substring search over
// first name, last name, student email, and the claimed item's name.
type ClaimFilter struct {
	Search string
}

// Match reports whether the claim satisfies the search term.
func (f ClaimFilter) Match(claim *Claim) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(claim.FirstName), needle) ||
		strings.Contains(strings.ToLower(claim.LastName), needle) ||
		strings.Contains(strings.ToLower(claim.StudEmail), needle) {
		return true
	}
	return claim.Item != nil &&
		strings.Contains(strings.ToLower(claim.Item.ItemName), needle)
}

// FilterClaims returns the claims matching the filter, preserving order.
func FilterClaims(claims []Claim, f ClaimFilter) []Claim {
	var out []Claim
	for i := range claims {
		if f.Match(&claims[i]) {
			out = append(out, claims[i])
		}
	}
	return out
}

// ReportedItems returns only the items still pending review.
func ReportedItems(items []Item) []Item {
	var out []Item
	for i := range items {
		if items[i].IsReported() {
			out = append(out, items[i])
		}
	}
	return out
}
