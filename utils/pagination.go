package utils

// PageLink is one entry in a pagination control: either a page number or an
// ellipsis marker standing in for a skipped range.
type PageLink struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageWindow emits the page links to render for the given current page: the
// first and last page always, the pages within radius of current, and
// ellipsis markers where the window does not reach a boundary. Boundaries are
// never duplicated and never both omitted.
func PageWindow(current, total, radius int) []PageLink {
	if total < 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if radius < 1 {
		radius = 1
	}

	var links []PageLink
	lastAdded := 0
	for page := 1; page <= total; page++ {
		inWindow := page == 1 || page == total ||
			(page >= current-radius && page <= current+radius)
		if !inWindow {
			continue
		}
		if lastAdded != 0 && page-lastAdded > 1 {
			links = append(links, PageLink{Ellipsis: true})
		}
		links = append(links, PageLink{Page: page})
		lastAdded = page
	}
	return links
}
