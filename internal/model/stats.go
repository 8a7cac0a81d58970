package model

// TrackedCategories is the fixed category set broken out on the dashboard.
// Items whose category is not in this set still count toward the total but
// are excluded from the per-category breakdown.
var TrackedCategories = []string{
	"Electronics",
	"Furniture",
	"Office Supplies",
	"Books",
	"Kitchen",
	"Others",
}

// CategoryCount is one dashboard bar: a tracked category, its item count, and
// the bar width as a percentage of the largest tracked count. Bars are
// comparable only to each other, not to an absolute share of the total.
type CategoryCount struct {
	Name    string
	Count   int
	Percent int
}

// ItemStats holds the dashboard aggregates derived from the full item list.
type ItemStats struct {
	Total      int
	ByStatus   map[string]int
	Categories []CategoryCount
}

// ComputeItemStats derives all dashboard counts in a single pass over the
// fetched item list.
func ComputeItemStats(items []Item) ItemStats {
	stats := ItemStats{
		Total:    len(items),
		ByStatus: make(map[string]int),
	}

	tracked := make(map[string]int, len(TrackedCategories))
	for i := range items {
		stats.ByStatus[items[i].Status]++
		if name := items[i].CategoryName(); isTracked(name) {
			tracked[name]++
		}
	}

	max := 0
	for _, count := range tracked {
		if count > max {
			max = count
		}
	}

	for _, name := range TrackedCategories {
		count := tracked[name]
		percent := 0
		if max > 0 {
			percent = count * 100 / max
		}
		stats.Categories = append(stats.Categories, CategoryCount{
			Name:    name,
			Count:   count,
			Percent: percent,
		})
	}

	return stats
}

// StatusCount returns the number of items with the given status.
func (s ItemStats) StatusCount(status string) int {
	return s.ByStatus[status]
}

func isTracked(name string) bool {
	for _, t := range TrackedCategories {
		if t == name {
			return true
		}
	}
	return false
}
