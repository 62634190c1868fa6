// Package pagination converts the from/size query contract into SQL
// LIMIT/OFFSET. The offset is page-aligned: from=3,size=2 lands on page
// 1 and therefore offset 2, matching the original page-index contract.
package pagination

import (
	"shareit/internal/apperr"
)

type Page struct {
	Limit  int
	Offset int
}

// Parse validates from/size and returns the page window. size=0 is
// rejected outright rather than treated as "unpaged".
func Parse(from, size int) (Page, error) {
	if from < 0 {
		return Page{}, apperr.Validation("from must not be negative, got %d", from)
	}
	if size < 1 {
		return Page{}, apperr.Validation("size must be at least 1, got %d", size)
	}
	return Page{
		Limit:  size,
		Offset: (from / size) * size,
	}, nil
}
