package product

import "strings"

// Predicate is a single catalog filter. Filters compose with AND semantics
// and never reorder the input.
type Predicate func(*Product) bool

// MatchText matches the query case-insensitively against name and
// description. An empty query matches everything.
func MatchText(query string) Predicate {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(p *Product) bool {
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q)
	}
}

// MatchCategory matches the category exactly. Empty means no restriction.
func MatchCategory(category string) Predicate {
	return func(p *Product) bool {
		if category == "" {
			return true
		}
		return p.Category == category
	}
}

// MatchPriceRange keeps products with min <= price <= max. A nil bound
// leaves that side open.
func MatchPriceRange(min, max *float64) Predicate {
	return func(p *Product) bool {
		if min != nil && p.Price < *min {
			return false
		}
		if max != nil && p.Price > *max {
			return false
		}
		return true
	}
}

// MatchVeg filters on the vegetarian flag. Nil means no restriction.
func MatchVeg(isVeg *bool) Predicate {
	return func(p *Product) bool {
		return isVeg == nil || p.IsVeg == *isVeg
	}
}

// All combines predicates with AND. With no predicates it matches
// everything.
func All(preds ...Predicate) Predicate {
	return func(p *Product) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Apply returns the products satisfying pred, in their original order.
func Apply(products []*Product, pred Predicate) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
