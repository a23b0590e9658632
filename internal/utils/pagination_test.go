package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateSinglePage(t *testing.T) {
	assert.Nil(t, Paginate(1, 1))
	assert.Nil(t, Paginate(1, 0))
}

func TestPaginateWindow(t *testing.T) {
	p := Paginate(5, 10)
	if assert.NotNil(t, p) {
		assert.True(t, p.HasPrev)
		assert.True(t, p.HasNext)
		assert.Equal(t, 4, p.PrevPage)
		assert.Equal(t, 6, p.NextPage)

		var numbers []int
		for _, page := range p.Pages {
			numbers = append(numbers, page.Number)
		}
		// first, ellipsis, window around 5, ellipsis, last
		assert.Equal(t, []int{1, 0, 3, 4, 5, 6, 7, 0, 10}, numbers)
	}
}

func TestPaginateCurrentPageIsNotALink(t *testing.T) {
	p := Paginate(2, 3)
	for _, page := range p.Pages {
		if page.Number == 2 {
			assert.False(t, page.IsLink)
		} else if page.Number != 0 {
			assert.True(t, page.IsLink)
		}
	}
}

func TestPaginateEdges(t *testing.T) {
	first := Paginate(1, 10)
	assert.False(t, first.HasPrev)
	assert.True(t, first.HasNext)

	last := Paginate(10, 10)
	assert.True(t, last.HasPrev)
	assert.False(t, last.HasNext)
}
