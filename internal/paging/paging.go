package paging

import (
	"net/url"
	"strconv"
)

const (
	DefaultPageIndex = 0
	DefaultPageSize  = 10
)

// Params describes one requested page window. PageIndex is zero-based.
type Params struct {
	PageIndex int    `json:"pageIndex"`
	PageSize  int    `json:"pageSize"`
	SortField string `json:"sortField,omitempty"`
	SortDesc  bool   `json:"sortDesc"`
}

// PageInfo is the page metadata attached to list responses. Page uses the
// same zero-based convention as the request.
type PageInfo struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// Normalize replaces out-of-range values with the defaults.
func (p Params) Normalize() Params {
	if p.PageIndex < 0 {
		p.PageIndex = DefaultPageIndex
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// Window returns the limit/offset pair for the requested page. No upper
// bound is enforced on the page size; that is the caller's responsibility.
func (p Params) Window() (limit int, offset int) {
	p = p.Normalize()
	return p.PageSize, p.PageIndex * p.PageSize
}

// NewPageInfo builds page metadata from the requested window and the total
// count of the filtered set, counted before the window is applied.
func NewPageInfo(p Params, totalCount int) PageInfo {
	p = p.Normalize()

	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + p.PageSize - 1) / p.PageSize
	}

	return PageInfo{
		Page:        p.PageIndex,
		PageSize:    p.PageSize,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasPrevious: p.PageIndex > 0,
		HasNext:     p.PageIndex < totalPages-1,
	}
}

// FromQuery parses paging parameters from a request query string, falling
// back to the defaults for absent or malformed values.
func FromQuery(q url.Values) Params {
	p := Params{
		PageIndex: DefaultPageIndex,
		PageSize:  DefaultPageSize,
		SortField: q.Get("sortField"),
	}

	if raw := q.Get("pageIndex"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.PageIndex = v
		}
	}
	if raw := q.Get("pageSize"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			p.PageSize = v
		}
	}
	if raw := q.Get("sortDesc"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			p.SortDesc = v
		}
	}

	return p.Normalize()
}
