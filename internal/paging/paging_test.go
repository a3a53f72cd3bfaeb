package paging

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("zero values pick up the defaults", func(t *testing.T) {
		p := Params{}.Normalize()

		require.Equal(t, DefaultPageIndex, p.PageIndex)
		require.Equal(t, DefaultPageSize, p.PageSize)
	})

	t.Run("negative index resets to the first page", func(t *testing.T) {
		p := Params{PageIndex: -3, PageSize: 5}.Normalize()

		require.Equal(t, 0, p.PageIndex)
		require.Equal(t, 5, p.PageSize)
	})

	t.Run("in-range values pass through", func(t *testing.T) {
		p := Params{PageIndex: 4, PageSize: 50}.Normalize()

		require.Equal(t, 4, p.PageIndex)
		require.Equal(t, 50, p.PageSize)
	})
}

func TestWindow(t *testing.T) {
	t.Parallel()

	t.Run("first page starts at zero", func(t *testing.T) {
		limit, offset := Params{PageIndex: 0, PageSize: 10}.Window()

		require.Equal(t, 10, limit)
		require.Equal(t, 0, offset)
	})

	t.Run("offset scales with the page index", func(t *testing.T) {
		limit, offset := Params{PageIndex: 3, PageSize: 7}.Window()

		require.Equal(t, 7, limit)
		require.Equal(t, 21, offset)
	})

	t.Run("consecutive pages cover disjoint ranges", func(t *testing.T) {
		total := 25
		size := 10
		seen := make(map[int]bool, total)

		for page := 0; page*size < total; page++ {
			limit, offset := Params{PageIndex: page, PageSize: size}.Window()
			for i := offset; i < offset+limit && i < total; i++ {
				require.False(t, seen[i], "row %d returned twice", i)
				seen[i] = true
			}
		}

		require.Len(t, seen, total)
	})
}

func TestNewPageInfo(t *testing.T) {
	t.Parallel()

	t.Run("partial last page rounds the page count up", func(t *testing.T) {
		info := NewPageInfo(Params{PageIndex: 0, PageSize: 10}, 25)

		require.Equal(t, 0, info.Page)
		require.Equal(t, 10, info.PageSize)
		require.Equal(t, 25, info.TotalCount)
		require.Equal(t, 3, info.TotalPages)
		require.False(t, info.HasPrevious)
		require.True(t, info.HasNext)
	})

	t.Run("middle page has neighbours on both sides", func(t *testing.T) {
		info := NewPageInfo(Params{PageIndex: 1, PageSize: 10}, 25)

		require.True(t, info.HasPrevious)
		require.True(t, info.HasNext)
	})

	t.Run("last page has no next", func(t *testing.T) {
		info := NewPageInfo(Params{PageIndex: 2, PageSize: 10}, 25)

		require.True(t, info.HasPrevious)
		require.False(t, info.HasNext)
	})

	t.Run("exact multiple leaves no partial page", func(t *testing.T) {
		info := NewPageInfo(Params{PageIndex: 0, PageSize: 10}, 30)

		require.Equal(t, 3, info.TotalPages)
	})

	t.Run("empty result set still reports the first page", func(t *testing.T) {
		info := NewPageInfo(Params{PageIndex: 0, PageSize: 10}, 0)

		require.Equal(t, 0, info.Page)
		require.Equal(t, 0, info.TotalPages)
		require.False(t, info.HasPrevious)
		require.False(t, info.HasNext)
	})
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	t.Run("missing parameters fall back to defaults", func(t *testing.T) {
		p := FromQuery(url.Values{})

		require.Equal(t, DefaultPageIndex, p.PageIndex)
		require.Equal(t, DefaultPageSize, p.PageSize)
		require.Empty(t, p.SortField)
		require.False(t, p.SortDesc)
	})

	t.Run("parses index size and sort", func(t *testing.T) {
		q := url.Values{}
		q.Set("pageIndex", "2")
		q.Set("pageSize", "5")
		q.Set("sortField", "email")
		q.Set("sortDesc", "true")

		p := FromQuery(q)

		require.Equal(t, 2, p.PageIndex)
		require.Equal(t, 5, p.PageSize)
		require.Equal(t, "email", p.SortField)
		require.True(t, p.SortDesc)
	})

	t.Run("garbage numbers are ignored", func(t *testing.T) {
		q := url.Values{}
		q.Set("pageIndex", "two")
		q.Set("pageSize", "-1")
		q.Set("sortDesc", "maybe")

		p := FromQuery(q)

		require.Equal(t, DefaultPageIndex, p.PageIndex)
		require.Equal(t, DefaultPageSize, p.PageSize)
		require.False(t, p.SortDesc)
	})
}
