package repository

import "inventory-api/internal/paging"

// orderBy resolves the requested sort field against a whitelist, falling back
// to the repository's default column, and appends the direction.
func orderBy(allowed map[string]string, p paging.Params, fallback string) string {
	column, ok := allowed[p.SortField]
	if !ok {
		column = fallback
	}
	if p.SortDesc {
		return column + " DESC"
	}
	return column + " ASC"
}
