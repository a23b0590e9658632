package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustIndexAfterRemoval(t *testing.T) {
	cases := []struct {
		name           string
		cover, removed int
		want           int
	}{
		{"removing the cover resets to front", 2, 2, 0},
		{"removing an earlier image shifts down", 3, 1, 2},
		{"removing a later image keeps the cover", 1, 3, 1},
		{"removing after the front cover", 0, 2, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdjustIndexAfterRemoval(tc.cover, tc.removed))
		})
	}
}

func TestPlanOrder(t *testing.T) {
	assert.Nil(t, PlanOrder(0, 0))

	// Cover already at the front: identity ordering.
	assert.Equal(t, []int{0, 1, 2}, PlanOrder(3, 0))

	// Last image promoted to cover, everything else keeps relative order.
	assert.Equal(t, []int{1, 2, 0}, PlanOrder(3, 2))

	// Middle image promoted.
	assert.Equal(t, []int{1, 0, 2, 3}, PlanOrder(4, 1))

	// Out-of-range cover falls back to the first image.
	assert.Equal(t, []int{0, 1}, PlanOrder(2, 7))
	assert.Equal(t, []int{0, 1}, PlanOrder(2, -1))
}

func TestPlanOrderIsDense(t *testing.T) {
	for total := 1; total <= 4; total++ {
		for cover := 0; cover < total; cover++ {
			plan := PlanOrder(total, cover)
			seen := make(map[int]bool, total)
			for _, ord := range plan {
				seen[ord] = true
			}
			for want := 0; want < total; want++ {
				assert.True(t, seen[want], "total=%d cover=%d missing ordinal %d", total, cover, want)
			}
		}
	}
}
