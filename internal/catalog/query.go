package catalog

import (
	"sort"
	"strings"
)

// Sort orders for query results.
const (
	SortLatest    = "latest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// FilterSpec is the set of user-chosen constraints applied to the
// catalog. A fresh spec is created per listing-screen mount; it never
// outlives the screen.
type FilterSpec struct {
	PriceMin   float64
	PriceMax   float64
	Conditions map[Condition]bool // empty = all
	Brands     map[string]bool    // empty = all
	Category   string             // optional, exact id match
	Query      string             // optional, case-insensitive title substring
	Sort       string

	// MaxDistance is collected by the filter sidebar but is not part of
	// the predicate chain. The distance control has never been wired to
	// an actual predicate; keep it advisory until product decides
	// otherwise.
	MaxDistance float64
}

// DefaultFilter returns a spec that admits every product.
func DefaultFilter(maxPrice float64) FilterSpec {
	return FilterSpec{
		PriceMin:   0,
		PriceMax:   maxPrice,
		Conditions: map[Condition]bool{},
		Brands:     map[string]bool{},
		Sort:       SortLatest,
	}
}

// Query returns the products matching spec, ordered per spec.Sort.
// It is pure: the input slice is never mutated and the stages commute,
// applied in a fixed order for clarity. An empty result is a valid,
// displayable state.
func Query(products []Product, spec FilterSpec) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if spec.Category != "" && p.Category != spec.Category {
			continue
		}
		if !matchesSearch(p, spec.Query) {
			continue
		}
		if len(spec.Conditions) > 0 && !spec.Conditions[p.Condition] {
			continue
		}
		if !matchesBrand(p, spec.Brands) {
			continue
		}
		if p.Price < spec.PriceMin || p.Price > spec.PriceMax {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, spec.Sort)
	return out
}

func matchesSearch(p Product, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(query))
}

// matchesBrand treats an absent brand as excluded by any non-empty brand
// filter, not as a wildcard.
func matchesBrand(p Product, brands map[string]bool) bool {
	if len(brands) == 0 {
		return true
	}
	if p.Brand == "" {
		return false
	}
	return brands[p.Brand]
}

func sortProducts(products []Product, order string) {
	switch order {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default:
		// latest: catalog order is already newest-first
	}
}

// Brands returns the distinct defined brands across the catalog in
// first-seen order. Feeds the brand filter checkboxes.
func Brands(products []Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if p.Brand == "" || seen[p.Brand] {
			continue
		}
		seen[p.Brand] = true
		out = append(out, p.Brand)
	}
	return out
}
