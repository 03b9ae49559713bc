package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Project derives the filtered and sorted view of the canonical list.
//
// Filtering runs first: a non-empty search term keeps products whose title
// or description contains it case-insensitively; a selected category other
// than CategoryAll keeps exact (case-sensitive) category matches. Sorting
// is stable, so products with equal keys keep their pre-sort relative
// order. Identical inputs always yield identical output order.
//
// The input slice is never modified; the result is always a fresh slice.
func Project(products []Product, filters FilterSettings) []Product {
	filtered := make([]Product, 0, len(products))

	term := strings.ToLower(filters.SearchTerm)
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if filters.SelectedCategory != CategoryAll && p.Category != filters.SelectedCategory {
			continue
		}
		filtered = append(filtered, p)
	}

	if filters.SortBy == SortNone {
		return filtered
	}

	compare := comparator(filters.SortBy)
	sign := 1
	if filters.SortOrder == SortDesc {
		sign = -1
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return sign*compare(filtered[i], filtered[j]) < 0
	})

	return filtered
}

// comparator returns the three-way comparison for a sort field.
func comparator(field SortField) func(a, b Product) int {
	switch field {
	case SortName:
		// Locale-aware lexicographic comparison. The collator is not
		// safe for concurrent use, so each projection builds its own.
		coll := collate.New(language.Und)
		return func(a, b Product) int {
			return coll.CompareString(a.Title, b.Title)
		}
	case SortPrice:
		return func(a, b Product) int {
			switch {
			case a.Price < b.Price:
				return -1
			case a.Price > b.Price:
				return 1
			default:
				return 0
			}
		}
	default:
		return func(Product, Product) int { return 0 }
	}
}
