package utils

type Page struct {
	Number int
	IsLink bool
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevPage    int
	NextPage    int
	Pages       []Page
}

// Paginate builds the page list for the admin post table: first and last
// page always shown, a window of two pages around the current one, and
// zero-numbered entries standing in for ellipses.
func Paginate(currentPage, totalPages int) *Pagination {
	if totalPages <= 1 {
		return nil
	}

	const window = 2

	var pages []Page
	pages = append(pages, Page{Number: 1, IsLink: true})

	if currentPage > window+2 {
		pages = append(pages, Page{}) // ellipsis
	}

	start := max(2, currentPage-window)
	end := min(totalPages-1, currentPage+window)
	for i := start; i <= end; i++ {
		pages = append(pages, Page{Number: i, IsLink: true})
	}

	if currentPage < totalPages-(window+1) {
		pages = append(pages, Page{}) // ellipsis
	}

	pages = append(pages, Page{Number: totalPages, IsLink: true})

	final := make([]Page, 0, len(pages))
	seen := make(map[int]bool)
	for _, p := range pages {
		if p.Number == currentPage {
			p.IsLink = false
		}
		if p.Number == 0 {
			final = append(final, p)
			continue
		}
		if !seen[p.Number] {
			final = append(final, p)
			seen[p.Number] = true
		}
	}

	return &Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
		Pages:       final,
	}
}
