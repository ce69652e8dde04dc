package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// QueryParams determines which recipes are visible and in which order.
// It is a value: the With* methods return an updated copy and leave the receiver unchanged.
// Changing the selector, search text or sort mode resets Page to 1.
type QueryParams struct {
	Selector Selector
	Search   string
	Sort     SortMode

	// Page is 1-indexed.
	Page int
}

// DefaultQueryParams returns the parameters of a fresh browsing session.
func DefaultQueryParams() QueryParams {
	return QueryParams{
		Selector: SelectAll,
		Sort:     SortTrending,
		Page:     1,
	}
}

// WithCategory returns params with the selector replaced and the page reset.
func (p QueryParams) WithCategory(s Selector) QueryParams {
	p.Selector = s
	p.Page = 1

	return p
}

// WithSearch returns params with the search text replaced and the page reset.
func (p QueryParams) WithSearch(text string) QueryParams {
	p.Search = text
	p.Page = 1

	return p
}

// WithSort returns params with the sort mode replaced and the page reset.
func (p QueryParams) WithSort(m SortMode) QueryParams {
	p.Sort = m
	p.Page = 1

	return p
}

// WithPage returns params pointing at another page of the same result.
func (p QueryParams) WithPage(n int) QueryParams {
	p.Page = n

	return p
}

// Reset clears the search text and selector. The sort mode is kept.
func (p QueryParams) Reset() QueryParams {
	return p.WithSearch("").WithCategory(SelectAll)
}

// Filter decides whether a recipe matches a selector and a title search.
type Filter struct {
	selector Selector
	needle   string
	folder   cases.Caser
}

// NewFilter builds a filter. The search is a case-insensitive substring match on the title.
// A Filter is not safe for concurrent use.
func NewFilter(s Selector, search string) *Filter {
	f := &Filter{selector: s, folder: cases.Fold()}
	f.needle = f.folder.String(search)

	return f
}

// Matches reports whether r satisfies both the selector and the search text.
func (f *Filter) Matches(r Recipe) bool {
	if !f.selector.Matches(r) {
		return false
	}

	if f.needle == "" {
		return true
	}

	return strings.Contains(f.folder.String(r.Title), f.needle)
}

// Compose filters recipes in their given order and stable-sorts the survivors.
// Recipes that compare equal keep their relative input order, so repeated calls
// with the same inputs always yield the same sequence. The input is not modified.
func Compose(recipes []Recipe, p QueryParams) []Recipe {
	f := NewFilter(p.Selector, p.Search)

	out := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f.Matches(r) {
			out = append(out, r)
		}
	}

	slices.SortStableFunc(out, p.Sort.Compare)

	return out
}
