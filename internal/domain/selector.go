package domain

import "strings"

const (
	// QuickMaxMinutes is the longest preparation time that still counts as quick.
	QuickMaxMinutes = 20

	// VeganTag marks a recipe as vegan.
	VeganTag = "Vegan"

	selectorAllName   = "All"
	selectorVeganName = "Vegan"
	selectorQuickName = "Quick"
)

// SelectorKind identifies which predicate a Selector applies.
type SelectorKind uint8

// Selector kinds. Vegan and Quick are derived from tags and time, not stored categories.
const (
	SelectorKindAll SelectorKind = iota
	SelectorKindCategory
	SelectorKindVegan
	SelectorKindQuick
)

// Selector is the category criterion of a query.
// The zero value selects everything.
type Selector struct {
	kind     SelectorKind
	category Category
}

// Predefined selectors.
var (
	SelectAll   = Selector{kind: SelectorKindAll}
	SelectVegan = Selector{kind: SelectorKindVegan}
	SelectQuick = Selector{kind: SelectorKindQuick}
)

// SelectCategory returns a selector matching recipes stored under c.
func SelectCategory(c Category) Selector {
	return Selector{kind: SelectorKindCategory, category: c}
}

// ParseSelector maps a selector name to a Selector.
// "All", "Vegan" and "Quick" are matched case-insensitively and an empty name means All.
// Any other name selects the category with exactly that name, which may match nothing.
func ParseSelector(name string) Selector {
	name = strings.TrimSpace(name)

	switch {
	case name == "", strings.EqualFold(name, selectorAllName):
		return SelectAll
	case strings.EqualFold(name, selectorVeganName):
		return SelectVegan
	case strings.EqualFold(name, selectorQuickName):
		return SelectQuick
	}

	for _, c := range Categories() {
		if strings.EqualFold(name, string(c)) {
			return SelectCategory(c)
		}
	}

	return SelectCategory(Category(name))
}

// FilterSelectors returns the selectors offered for browsing, in display order.
func FilterSelectors() []Selector {
	cats := Categories()

	out := make([]Selector, 0, len(cats)+3)
	out = append(out, SelectAll)

	for _, c := range cats {
		out = append(out, SelectCategory(c))
	}

	return append(out, SelectVegan, SelectQuick)
}

// Kind returns the selector kind.
func (s Selector) Kind() SelectorKind {
	return s.kind
}

// Category returns the selected category. Empty unless Kind is SelectorKindCategory.
func (s Selector) Category() Category {
	return s.category
}

// String returns the selector name as accepted by ParseSelector.
func (s Selector) String() string {
	switch s.kind {
	case SelectorKindCategory:
		return string(s.category)
	case SelectorKindVegan:
		return selectorVeganName
	case SelectorKindQuick:
		return selectorQuickName
	default:
		return selectorAllName
	}
}

// Matches reports whether r satisfies the category criterion.
func (s Selector) Matches(r Recipe) bool {
	switch s.kind {
	case SelectorKindAll:
		return true
	case SelectorKindCategory:
		return r.Category == s.category
	case SelectorKindVegan:
		return r.HasTag(VeganTag)
	case SelectorKindQuick:
		return r.Time <= QuickMaxMinutes
	default:
		return false
	}
}
