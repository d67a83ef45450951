package pagination

import (
	"fmt"
	"strconv"
)

// DefaultPerPage matches the page size used by every paginated listing.
const DefaultPerPage = 10

type Params struct {
	Page    int
	PerPage int
}

// ParsePage interprets the ?page query value. Missing or malformed values
// fall back to the first page.
func ParsePage(raw string) Params {
	page := 1
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			page = n
		}
	}
	return Params{Page: page, PerPage: DefaultPerPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Links carries the pointer to the following page. Next is nil on (and past)
// the last page, which is the client's terminal condition.
type Links struct {
	Next *string `json:"next"`
}

// BuildLinks computes the next-page link for a listing served at path.
func BuildLinks(path string, p Params, total int64) Links {
	if int64(p.Page*p.PerPage) >= total {
		return Links{}
	}
	next := fmt.Sprintf("%s?page=%d", path, p.Page+1)
	return Links{Next: &next}
}
