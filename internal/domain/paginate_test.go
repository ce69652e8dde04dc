package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		size          int
		number        int
		expectedItems []int
		expectedPages int
	}{
		{name: "empty sequence", total: 0, size: 6, number: 1, expectedItems: []int{}, expectedPages: 1},
		{name: "partial single page", total: 5, size: 6, number: 1, expectedItems: []int{0, 1, 2, 3, 4}, expectedPages: 1},
		{name: "exactly one page", total: 6, size: 6, number: 1, expectedItems: []int{0, 1, 2, 3, 4, 5}, expectedPages: 1},
		{name: "second page partial", total: 8, size: 6, number: 2, expectedItems: []int{6, 7}, expectedPages: 2},
		{name: "past the end is empty", total: 8, size: 6, number: 5, expectedItems: []int{}, expectedPages: 2},
		{name: "zero page treated as first", total: 3, size: 2, number: 0, expectedItems: []int{0, 1}, expectedPages: 2},
		{name: "zero size treated as one", total: 3, size: 0, number: 2, expectedItems: []int{1}, expectedPages: 3},
		{name: "huge page number", total: 3, size: 6, number: int(^uint(0) >> 1), expectedItems: []int{}, expectedPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(seq(tt.total), tt.size, tt.number)

			assert.Equal(t, tt.expectedItems, page.Items)
			assert.Equal(t, tt.expectedPages, page.TotalPages)
			assert.Equal(t, tt.total, page.TotalItems)
		})
	}
}

func TestPaginate_ConcatenationReproducesSequence(t *testing.T) {
	for _, n := range []int{0, 1, 5, 6, 7, 12, 13, 40} {
		items := seq(n)
		first := Paginate(items, DefaultPageSize, 1)

		var joined []int
		for p := 1; p <= first.TotalPages; p++ {
			joined = append(joined, Paginate(items, DefaultPageSize, p).Items...)
		}

		assert.Equal(t, n, len(joined), "n=%d", n)
		if n > 0 {
			assert.Equal(t, items, joined, "n=%d", n)
		}
	}
}

func TestPaginate_ItemsCannotGrowIntoSource(t *testing.T) {
	items := seq(10)
	page := Paginate(items, 3, 1)

	_ = append(page.Items, 99)

	assert.Equal(t, 3, items[3])
}

func TestPage_Navigation(t *testing.T) {
	page := Paginate(seq(13), 6, 2)

	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())

	last := Paginate(seq(13), 6, 3)
	assert.False(t, last.HasNext())

	only := Paginate(seq(0), 6, 1)
	assert.False(t, only.HasPrevious())
	assert.False(t, only.HasNext())
}
