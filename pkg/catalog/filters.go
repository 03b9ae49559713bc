package catalog

// CategoryAll is the sentinel category meaning no category filter.
const CategoryAll = "all"

// SortField selects the projection sort key.
type SortField string

const (
	// SortNone leaves the canonical order untouched.
	SortNone SortField = "none"
	// SortName sorts by title using locale-aware comparison.
	SortName SortField = "name"
	// SortPrice sorts by numeric price.
	SortPrice SortField = "price"
)

// SortOrder selects the sort direction.
type SortOrder string

const (
	// SortAsc sorts ascending.
	SortAsc SortOrder = "asc"
	// SortDesc sorts descending.
	SortDesc SortOrder = "desc"
)

// FilterSettings drive the Project engine. The zero value is not useful;
// use DefaultFilters.
type FilterSettings struct {
	SearchTerm       string    `yaml:"search_term"`
	SelectedCategory string    `yaml:"selected_category"`
	SortBy           SortField `yaml:"sort_by"`
	SortOrder        SortOrder `yaml:"sort_order"`
}

// DefaultFilters returns the settings a fresh session starts with:
// no search term, all categories, no sort.
func DefaultFilters() FilterSettings {
	return FilterSettings{
		SelectedCategory: CategoryAll,
		SortBy:           SortNone,
		SortOrder:        SortAsc,
	}
}

// Normalize maps unknown or empty enum values back to their defaults so a
// hand-edited or stale snapshot can never produce an unusable projection.
func (f FilterSettings) Normalize() FilterSettings {
	if f.SelectedCategory == "" {
		f.SelectedCategory = CategoryAll
	}
	switch f.SortBy {
	case SortName, SortPrice:
	default:
		f.SortBy = SortNone
	}
	switch f.SortOrder {
	case SortDesc:
	default:
		f.SortOrder = SortAsc
	}
	return f
}
