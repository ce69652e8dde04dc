package domain

import "cmp"

// SortMode names an ordering of query results.
type SortMode string

// Sort modes.
const (
	// SortTrending orders by rating, highest first.
	SortTrending SortMode = "trending"

	// SortTime orders by preparation time, shortest first.
	SortTime SortMode = "time"

	// SortCalories orders by calories, lightest first.
	SortCalories SortMode = "calories"
)

// SortModes returns the supported sort modes in display order.
func SortModes() []SortMode {
	return []SortMode{SortTrending, SortTime, SortCalories}
}

// ParseSortMode returns the sort mode with the given name.
// The boolean is false for unknown names.
func ParseSortMode(name string) (SortMode, bool) {
	m := SortMode(name)
	if m.Valid() {
		return m, true
	}

	return "", false
}

// Valid reports whether m is a supported sort mode.
func (m SortMode) Valid() bool {
	switch m {
	case SortTrending, SortTime, SortCalories:
		return true
	default:
		return false
	}
}

// Label returns a human readable name for the sort mode.
func (m SortMode) Label() string {
	switch m {
	case SortTrending:
		return "Trending"
	case SortTime:
		return "Time (asc)"
	case SortCalories:
		return "Calories (asc)"
	default:
		return string(m)
	}
}

// Compare orders a before b under the sort mode.
// Unknown modes treat every pair as equal, so a stable sort keeps catalog order.
func (m SortMode) Compare(a, b Recipe) int {
	switch m {
	case SortTrending:
		return cmp.Compare(b.Rating, a.Rating)
	case SortTime:
		return cmp.Compare(a.Time, b.Time)
	case SortCalories:
		return cmp.Compare(a.Calories, b.Calories)
	default:
		return 0
	}
}
