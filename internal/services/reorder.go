package services

// AdjustIndexAfterRemoval returns the new cover index after the item at
// removed disappears from the visible list. Removing the cover itself
// resets the cover to the first image; removing an earlier item shifts the
// cover down by one.
func AdjustIndexAfterRemoval(cover, removed int) int {
	switch {
	case removed == cover:
		return 0
	case removed < cover:
		return cover - 1
	default:
		return cover
	}
}

// PlanOrder computes the final display ordinal for each of total visible
// images (retained existing first, then new uploads, both in their current
// order) after the image at cover is moved to the front. The result is a
// dense 0..total-1 assignment preserving the relative order of everything
// else, so a new-file cover lands at 0 and every existing image shifts up
// by one, while an existing cover pulls to the front with new images
// continuing after the retained ones.
func PlanOrder(total, cover int) []int {
	if total == 0 {
		return nil
	}
	if cover < 0 || cover >= total {
		cover = 0
	}

	plan := make([]int, total)
	next := 1
	for i := range plan {
		if i == cover {
			plan[i] = 0
			continue
		}
		plan[i] = next
		next++
	}
	return plan
}
